// Command doodle renders and inspects serialized doodle drawings.
//
// Render a drawing to PNG:
//
//	doodle -in drawing.json -out out.png
//
// Render the replay frame at 1.2 seconds:
//
//	doodle -in drawing.json -frame 1.2 -out frame.png
//
// Print the replay schedule:
//
//	doodle -in drawing.json -schedule
//
// Render a share card with a caption:
//
//	doodle -in drawing.json -card -note "rainy tuesday" -out card.png
//
// Store and load drawings in a journal database:
//
//	doodle -db journal.db -day 2026-08-23 -put -in drawing.json -note "hello"
//	doodle -db journal.db -day 2026-08-23 -card -out card.png
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/joodle/doodle"
	"github.com/joodle/doodle/journal"
	"github.com/joodle/doodle/render"
	"github.com/joodle/doodle/replay"
)

func main() {
	var (
		in       = flag.String("in", "", "input drawing JSON file")
		out      = flag.String("out", "out.png", "output PNG file")
		width    = flag.Int("width", 0, "output width (default 512)")
		height   = flag.Int("height", 0, "output height (default 512, cards 640)")
		frame    = flag.Float64("frame", -1, "render the replay frame at this elapsed time in seconds")
		schedule = flag.Bool("schedule", false, "print the replay schedule instead of rendering")
		card     = flag.Bool("card", false, "render a share card")
		note     = flag.String("note", "", "caption for cards, and note text for -put")
		dbPath   = flag.String("db", "", "journal database file")
		day      = flag.String("day", "", "journal day (2006-01-02), used with -db")
		put      = flag.Bool("put", false, "store -in and -note under -day in the journal")
	)
	flag.Parse()

	blob, caption, err := loadBlob(*in, *dbPath, *day, *note, *put)
	if err != nil {
		log.Fatalf("Failed to load drawing: %v", err)
	}
	if *put {
		log.Printf("Stored entry for %s", *day)
		return
	}

	drawing, err := doodle.ParseDrawing(blob)
	if err != nil {
		log.Fatalf("Failed to parse drawing: %v", err)
	}
	paths := drawing.Decode()

	if *schedule {
		printSchedule(paths)
		return
	}

	opts := render.Options{Width: *width, Height: *height}
	var img *image.RGBA
	switch {
	case *card:
		img = render.RenderCard(paths, render.CardOptions{
			Options: opts,
			Caption: caption,
		})
	case *frame >= 0:
		sched := replay.New(paths, replay.Config{})
		img = render.RenderFrame(paths, sched.Progress(*frame), opts)
	default:
		img = render.Render(paths, opts)
	}

	if err := savePNG(*out, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	b := img.Bounds()
	log.Printf("Saved %s (%dx%d)", *out, b.Dx(), b.Dy())
}

// loadBlob resolves the drawing bytes and caption from either the input
// file or the journal, storing first when -put is set.
func loadBlob(in, dbPath, day, note string, put bool) ([]byte, string, error) {
	if dbPath == "" {
		if put {
			return nil, "", fmt.Errorf("-put requires -db")
		}
		if in == "" {
			return nil, "", fmt.Errorf("no input: pass -in or -db with -day")
		}
		blob, err := os.ReadFile(in)
		return blob, note, err
	}

	store, err := journal.Open(dbPath)
	if err != nil {
		return nil, "", err
	}
	defer store.Close()

	if put {
		var blob []byte
		if in != "" {
			if blob, err = os.ReadFile(in); err != nil {
				return nil, "", err
			}
		}
		return blob, note, store.Put(journal.Entry{Day: day, Note: note, Drawing: blob})
	}

	entry, err := store.Get(day)
	if err != nil {
		return nil, "", err
	}
	caption := note
	if caption == "" {
		caption = entry.Note
	}
	return entry.Drawing, caption, nil
}

// printSchedule writes the per-stroke replay timing to stdout.
func printSchedule(paths []doodle.DecodedPath) {
	sched := replay.New(paths, replay.Config{})
	fmt.Printf("%-8s %-6s %-10s %-10s %s\n", "stroke", "dot", "duration", "end", "length")
	for i := 0; i < sched.Len(); i++ {
		fmt.Printf("%-8d %-6t %-10.4f %-10.4f %.2f\n",
			i, sched.Dot(i), sched.Duration(i), sched.End(i), paths[i].Path.Length())
	}
	fmt.Printf("total: %.4fs over %d strokes\n", sched.Total(), sched.Len())
}

// savePNG writes the image to a PNG file.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.EncodePNG(f, img)
}
