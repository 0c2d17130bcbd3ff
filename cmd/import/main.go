// import ingests a dispatch spreadsheet export into one of the three event
// streams. The first sheet's first row is taken as the column header; every
// following row becomes one record, reconciled against the employee
// directory and stamped with the uploading operator's identity.
//
// Usage: go run ./cmd/import -stream schedule -file export.xlsx -uploader ops@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"technician-portal/internal/app"
	"technician-portal/internal/core"
	"technician-portal/internal/db"
)

func main() {
	stream := flag.String("stream", "", "target stream: schedule, travel or work")
	file := flag.String("file", "", "path to the .xlsx export")
	uploader := flag.String("uploader", "", "email of the portal account performing the upload")
	flag.Parse()

	if *stream == "" || *file == "" || *uploader == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	svc := app.NewAppService(
		core.NewImportService(pool),
		core.NewEventService(pool),
		core.NewEmployeeService(pool),
		core.NewMaterialService(pool),
		core.NewUserService(pool),
	)

	rows, err := readRows(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	req := app.ImportRequest{UploaderEmail: *uploader, Rows: rows}

	var result *app.ImportResult
	switch *stream {
	case "schedule":
		result, err = svc.ImportScheduleEvents(ctx, req)
	case "travel":
		result, err = svc.ImportTravelEvents(ctx, req)
	case "work":
		result, err = svc.ImportWorkEvents(ctx, req)
	default:
		log.Fatalf("unknown stream %q: want schedule, travel or work", *stream)
	}
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	fmt.Printf("%d %s events uploaded\n", result.Inserted, result.Stream)
	if len(result.UnmatchedTechnicians) > 0 {
		fmt.Printf("%d technician name(s) could not be matched:\n", len(result.UnmatchedTechnicians))
		for _, name := range result.UnmatchedTechnicians {
			fmt.Printf("  %q\n", name)
		}
	}
}

// readRows flattens the first sheet of an .xlsx file into rows of named
// fields, using the first row as column labels. Short rows are padded by
// omission: absent cells simply stay out of the map.
func readRows(path string) ([]core.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	header := cells[0]
	rows := make([]core.Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(core.Row, len(header))
		for i, label := range header {
			if label == "" || i >= len(line) {
				continue
			}
			row[label] = line[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
