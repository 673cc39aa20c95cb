package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/offer"
)

const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatCSV      = "csv"
	formatJSON     = "json"

	wordWrap = 100
)

var hotelColumns = []string{"Name", "Price", "Rating", "Reviews", "Link"}

func validateFormat(f string) error {
	switch f {
	case formatTable, formatMarkdown, formatCSV, formatJSON:
		return nil
	}

	return fmt.Errorf("unknown format %q", f)
}

// withOutput runs write against the --output file, or stdout.
func withOutput(write func(w io.Writer) error) error {
	if outputFile == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}

	return f.Close()
}

// writeOffers renders offers in the selected format. Offer markdown is
// written as is so its line breaks survive.
func writeOffers(w io.Writer, f string, resp dto.FlightSearchResponse) error {
	offers := resp.NormalizedOffers()

	switch f {
	case formatJSON:
		return writeJSON(w, resp)
	case formatCSV:
		return writeCSV(w, offer.Columns, offer.RowValues(resp.Table.Rows))
	case formatMarkdown:
		_, err := io.WriteString(w, offer.MarkdownDocument(offers))
		return err
	default:
		return writeTable(w, offer.Columns, offer.RowValues(resp.Table.Rows))
	}
}

func writeHotels(w io.Writer, f string, resp dto.HotelSearchResponse) error {
	rows := make([][]string, len(resp.Hotels))
	for i, h := range resp.Hotels {
		rows[i] = []string{h.Name, h.Price, h.Rating, h.Reviews, h.Link}
	}

	switch f {
	case formatJSON:
		return writeJSON(w, resp)
	case formatCSV:
		return writeCSV(w, hotelColumns, rows)
	default:
		return writeTable(w, hotelColumns, rows)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}

	return nil
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(header...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())

	return err
}

// writeMarkdown styles md for the terminal, files get the raw document.
func writeMarkdown(w io.Writer, md string) error {
	if outputFile != "" {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)

	return err
}
