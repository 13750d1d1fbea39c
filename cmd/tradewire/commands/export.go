package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tradewire/tradewire-go/pkg/log"
	"github.com/tradewire/tradewire-go/pkg/render"
)

// RunExport exports the capture file to the specified format. An empty
// output writes to stdout.
func RunExport(path, format, output string, stdout io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

var csvHeader = []string{
	"timestamp", "run_id", "stage", "category", "source",
	"size", "ts", "symbol", "price", "qty", "venue", "error",
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(event log.Event) []string {
	row := make([]string, len(csvHeader))
	row[0] = event.Timestamp.UTC().Format(timeLayout)
	row[1] = event.RunID
	row[2] = event.Stage.String()
	row[3] = event.Category.String()
	row[4] = event.Source

	switch {
	case event.Input != nil:
		row[5] = strconv.Itoa(event.Input.Size)
	case event.Record != nil:
		row[6] = strconv.FormatUint(event.Record.TS, 10)
		row[7] = string(render.FixedText(event.Record.Symbol))
		row[8] = strconv.FormatInt(event.Record.Price, 10)
		row[9] = strconv.FormatUint(event.Record.Qty, 10)
		row[10] = string(render.FixedText(event.Record.Venue))
	case event.Error != nil:
		row[11] = event.Error.Message
	}
	return row
}
