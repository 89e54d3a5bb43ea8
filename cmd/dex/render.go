package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
)

// tableHeader is the column header of the text table.
var tableHeader = append([]string{"No", "名前", "入手状況"}, entities.VersionLabels()...)

func renderTable(w io.Writer, format string, result *handlers.TableResult) error {
	switch format {
	case "table":
		return formatTableText(w, result.Rows)
	case "json":
		return formatTableJSON(w, result.Rows)
	case "csv":
		return formatTableCSV(w, result.Rows)
	case "markdown":
		return formatTableMarkdown(w, result.Rows)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// matrixCells returns the availability cells in column order.
func matrixCells(row handlers.TableRow) []string {
	matrix := row.Matrix()
	cells := make([]string, 0, len(entities.TrackedVersions))
	for _, v := range entities.TrackedVersions {
		cells = append(cells, matrix[v.Label])
	}
	return cells
}

func formatTableText(w io.Writer, rows []handlers.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader, "\t"))
	for _, row := range rows {
		cells := append([]string{fmt.Sprintf("%03d", row.ID), row.Name, row.Mode.Label()}, matrixCells(row)...)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func formatTableJSON(w io.Writer, rows []handlers.TableRow) error {
	type exportRow struct {
		ID       int               `json:"id"`
		Name     string            `json:"name"`
		Mode     string            `json:"mode"`
		Versions map[string]string `json:"versions"`
		Error    string            `json:"error,omitempty"`
	}

	exportRows := make([]exportRow, 0, len(rows))
	for _, row := range rows {
		r := exportRow{
			ID:       row.ID,
			Name:     row.Name,
			Mode:     string(row.Mode),
			Versions: row.Matrix(),
		}
		if row.Err != nil {
			r.Error = row.Err.Error()
		}
		exportRows = append(exportRows, r)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportRows)
}

func formatTableCSV(w io.Writer, rows []handlers.TableRow) error {
	writer := csv.NewWriter(w)

	header := append([]string{"id", "name", "mode"}, entities.VersionLabels()...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := append([]string{fmt.Sprint(row.ID), row.Name, string(row.Mode)}, matrixCells(row)...)
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatTableMarkdown(w io.Writer, rows []handlers.TableRow) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(tableHeader, " | ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|%s\n", strings.Repeat("---|", len(tableHeader))); err != nil {
		return err
	}

	for _, row := range rows {
		cells := append([]string{fmt.Sprintf("%03d", row.ID), escapeMarkdown(row.Name), row.Mode.Label()}, matrixCells(row)...)
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func renderDetail(w io.Writer, format string, detail *entities.Detail, mode entities.ModeStatus) error {
	switch format {
	case "text":
		return formatDetailText(w, detail, mode)
	case "json":
		out := struct {
			*entities.Detail
			Mode entities.ModeStatus `json:"mode"`
		}{Detail: detail, Mode: mode}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatDetailText(w io.Writer, d *entities.Detail, mode entities.ModeStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "No.%03d %s (%s)\n", d.Species.ID, d.Species.DisplayName(), d.Species.Key)
	if mode != entities.ModeNone {
		fmt.Fprintf(tw, "入手状況: %s\n", mode.Label())
	}
	fmt.Fprintf(tw, "タイプ: %s\n", joinTypeNames(d.Types, " / "))
	fmt.Fprintf(tw, "弱点: %s\n", joinTypeNames(d.Weaknesses, ", "))

	fmt.Fprintln(tw, "\n出現場所")
	if len(d.Encounters) == 0 {
		fmt.Fprintln(tw, "  なし")
	}
	for _, ve := range d.Encounters {
		fmt.Fprintf(tw, "  %s\n", ve.Version.Label)
		for _, loc := range ve.Locations {
			fmt.Fprintf(tw, "    %s\t%d%%\n", loc.Area, loc.Chance)
		}
	}

	fmt.Fprintln(tw, "\nレベルアップで覚えるわざ")
	if len(d.LevelUpMoves) == 0 {
		fmt.Fprintln(tw, "  なし")
	}
	for _, m := range d.LevelUpMoves {
		fmt.Fprintf(tw, "  Lv.%d\t%s\t%s\n", m.Level, m.Name, m.TypeName)
	}

	fmt.Fprintln(tw, "\nタマゴわざ")
	if len(d.EggMoves) == 0 {
		fmt.Fprintln(tw, "  なし")
	}
	for _, m := range d.EggMoves {
		fmt.Fprintf(tw, "  %s\t%s\n", m.Name, m.TypeName)
	}

	fmt.Fprintln(tw, "\n進化")
	parent := "なし"
	if d.Evolution.Parent != nil {
		parent = speciesLabel(*d.Evolution.Parent)
	}
	fmt.Fprintf(tw, "  進化前: %s\n", parent)
	children := make([]string, 0, len(d.Evolution.Children))
	for _, c := range d.Evolution.Children {
		children = append(children, speciesLabel(c))
	}
	if len(children) == 0 {
		children = append(children, "なし")
	}
	fmt.Fprintf(tw, "  進化後: %s\n", strings.Join(children, ", "))

	groups := make([]string, 0, len(d.EggGroups))
	for _, g := range d.EggGroups {
		groups = append(groups, g.Name)
	}
	fmt.Fprintf(tw, "\nタマゴグループ: %s\n", strings.Join(groups, ", "))

	return tw.Flush()
}

func joinTypeNames(types []entities.TypeInfo, sep string) string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return strings.Join(names, sep)
}

func speciesLabel(s entities.SpeciesRef) string {
	return fmt.Sprintf("%03d %s", s.ID, s.DisplayName())
}

func printImportResult(w io.Writer, result *handlers.ImportResult, dryRun bool) {
	// Display errors
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nValidation errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
	}

	// Display summary
	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintf(w, "Dry run: %d modes would be imported", result.Imported)
	} else {
		fmt.Fprintf(w, "Imported: %d modes", result.Imported)
	}

	if result.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped (already annotated)", result.Skipped)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, ", %d errors", len(result.Errors))
	}

	fmt.Fprintln(w)
}
