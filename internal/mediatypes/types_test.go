package mediatypes

import "testing"

func TestKindOf_Defaults(t *testing.T) {
	set := DefaultSet()

	tests := []struct {
		name string
		file string
		want Kind
	}{
		{"jpg image", "photo.jpg", KindImage},
		{"jpeg image", "photo.jpeg", KindImage},
		{"png image", "diagram.png", KindImage},
		{"gif image", "anim.gif", KindImage},
		{"webp image", "modern.webp", KindImage},
		{"uppercase extension", "PHOTO.JPG", KindImage},
		{"mixed case extension", "clip.Mp4", KindVideo},
		{"mp4 video", "clip.mp4", KindVideo},
		{"mov video", "clip.mov", KindVideo},
		{"avi video", "clip.avi", KindVideo},
		{"mkv video", "clip.mkv", KindVideo},
		{"webm video", "clip.webm", KindVideo},
		{"text file", "notes.txt", KindOther},
		{"no extension", "README", KindOther},
		{"dotfile", ".hidden", KindOther},
		{"extension only part of name", "jpg", KindOther},
		{"double extension", "archive.jpg.zip", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.KindOf(tt.file)
			if got != tt.want {
				t.Errorf("KindOf(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestNewSet_Normalization(t *testing.T) {
	set := NewSet([]string{"JPG", ".png", " gif "}, []string{"MP4", ".webm"})

	tests := []struct {
		file string
		want Kind
	}{
		{"a.jpg", KindImage},
		{"a.png", KindImage},
		{"a.gif", KindImage},
		{"a.mp4", KindVideo},
		{"a.webm", KindVideo},
		{"a.webp", KindOther},
		{"a.mov", KindOther},
	}

	for _, tt := range tests {
		got := set.KindOf(tt.file)
		if got != tt.want {
			t.Errorf("KindOf(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestNewSet_EmptyFallsBackToDefaults(t *testing.T) {
	set := NewSet(nil, []string{})

	if got := set.KindOf("a.jpg"); got != KindImage {
		t.Errorf("KindOf(a.jpg) = %q, want %q", got, KindImage)
	}
	if got := set.KindOf("a.mp4"); got != KindVideo {
		t.Errorf("KindOf(a.mp4) = %q, want %q", got, KindVideo)
	}
}

func TestNewSet_SkipsEmptyEntries(t *testing.T) {
	set := NewSet([]string{"jpg", "", "  "}, []string{"mp4"})

	if got := set.KindOf("a.jpg"); got != KindImage {
		t.Errorf("KindOf(a.jpg) = %q, want %q", got, KindImage)
	}
	if got := set.KindOf("a"); got != KindOther {
		t.Errorf("KindOf(a) = %q, want %q", got, KindOther)
	}
}

func TestIsMedia(t *testing.T) {
	set := DefaultSet()

	if !set.IsMedia("photo.jpg") {
		t.Error("IsMedia(photo.jpg) = false, want true")
	}
	if !set.IsMedia("clip.mkv") {
		t.Error("IsMedia(clip.mkv) = false, want true")
	}
	if set.IsMedia("notes.txt") {
		t.Error("IsMedia(notes.txt) = true, want false")
	}
}

func TestMimeType(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"photo.PNG", "image/png"},
		{"anim.gif", "image/gif"},
		{"modern.webp", "image/webp"},
		{"clip.mp4", "video/mp4"},
		{"clip.mkv", "video/x-matroska"},
		{"clip.mov", "video/quicktime"},
		{"clip.avi", "video/x-msvideo"},
		{"clip.webm", "video/webm"},
		{"unknown.xyz", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		got := MimeType(tt.file)
		if got != tt.want {
			t.Errorf("MimeType(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
