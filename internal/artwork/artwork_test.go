package artwork

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writePNG writes a w x h PNG to path.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 200, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func TestFindPriority(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string
		wantOK  bool
	}{
		{
			name:    "jpg wins over png and jpeg",
			present: []string{"thumbnail.jpeg", "thumbnail.png", "thumbnail.jpg"},
			want:    "thumbnail.jpg",
			wantOK:  true,
		},
		{
			name:    "png wins over jpeg",
			present: []string{"thumbnail.jpeg", "thumbnail.png"},
			want:    "thumbnail.png",
			wantOK:  true,
		},
		{
			name:    "jpeg alone",
			present: []string{"thumbnail.jpeg"},
			want:    "thumbnail.jpeg",
			wantOK:  true,
		},
		{
			name:    "no artwork",
			present: []string{"cover.jpg", "thumbnail.webp"},
			wantOK:  false,
		},
		{
			name:    "empty directory",
			present: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.present {
				if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
			}

			got, ok := Find(dir)
			if ok != tt.wantOK {
				t.Fatalf("Find ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != filepath.Join(dir, tt.want) {
				t.Errorf("Find = %q, want %q", got, filepath.Join(dir, tt.want))
			}
		})
	}
}

func TestFindIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "thumbnail.jpg"), 0755); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, "thumbnail.png"), 4, 4)

	got, ok := Find(dir)
	if !ok {
		t.Fatal("Find missed the png fallback")
	}
	if got != filepath.Join(dir, "thumbnail.png") {
		t.Errorf("Find = %q, want the png fallback", got)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumbnail.png")
	writePNG(t, path, 16, 10)

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Width != 16 || info.Height != 10 {
		t.Errorf("Inspect dimensions = %dx%d, want 16x10", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Inspect format = %q, want png", info.Format)
	}
}

func TestInspectUndecodable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumbnail.jpg")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Inspect(path); err == nil {
		t.Error("Inspect of garbage bytes should fail")
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		w        int
		h        int
		want     []string // substrings that must appear, one per warning
	}{
		{
			name:     "Good artwork",
			filename: "thumbnail.png",
			w:        1400,
			h:        1400,
			want:     nil,
		},
		{
			name:     "Not square",
			filename: "thumbnail.png",
			w:        1500,
			h:        1400,
			want:     []string{"not square"},
		},
		{
			name:     "Too small",
			filename: "thumbnail.png",
			w:        600,
			h:        600,
			want:     []string{"below the 1400px minimum"},
		},
		{
			name:     "Small and not square",
			filename: "thumbnail.png",
			w:        640,
			h:        480,
			want:     []string{"not square", "below the 1400px minimum"},
		},
		{
			name:     "PNG bytes behind a jpg name",
			filename: "thumbnail.jpg",
			w:        1400,
			h:        1400,
			want:     []string{"actually contains png data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			writePNG(t, path, tt.w, tt.h)

			got := Check(path)
			if len(got) != len(tt.want) {
				t.Fatalf("Check returned %d warnings (%v), want %d", len(got), got, len(tt.want))
			}
			for i, sub := range tt.want {
				if !strings.Contains(got[i], sub) {
					t.Errorf("warning[%d] = %q, missing %q", i, got[i], sub)
				}
			}
		})
	}
}

func TestCheckUndecodable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thumbnail.jpg")
	if err := os.WriteFile(path, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	got := Check(path)
	if len(got) != 1 {
		t.Fatalf("Check returned %d warnings (%v), want 1", len(got), got)
	}
	if !strings.Contains(got[0], "not decodable") {
		t.Errorf("warning = %q, missing %q", got[0], "not decodable")
	}
}
