package lyricbook

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SongSeparator separates the title from the artist in a song query.
const SongSeparator = " / "

// FilenameSeparator replaces SongSeparator in derived filenames.
const FilenameSeparator = " - "

// UntitledFilename stands in for a title that sanitizes to nothing.
const UntitledFilename = "untitled"

// Song is a single query from the song list.
type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ParseSong parses a "<title>" or "<title> / <artist>" query.
// The title must be non-empty; the artist may be empty.
func ParseSong(line string) (Song, error) {
	title, artist, _ := strings.Cut(line, SongSeparator)
	s := Song{
		Title:  strings.TrimSpace(title),
		Artist: strings.TrimSpace(artist),
	}
	if err := s.Validate(); err != nil {
		return Song{}, err
	}
	return s, nil
}

// Validate returns an error if the song contains invalid fields.
func (s Song) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "song title required")
	}
	return nil
}

// String returns the song in its query form.
func (s Song) String() string {
	if s.Artist == "" {
		return s.Title
	}
	return s.Title + SongSeparator + s.Artist
}

// Filename returns the output file name for the song.
// Example: "Song A / Artist B" → "Song A - Artist B.html"
func (s Song) Filename() string {
	name := SanitizeFilename(s.Title)
	if name == "" {
		name = UntitledFilename
	}
	if artist := SanitizeFilename(s.Artist); artist != "" {
		name += FilenameSeparator + artist
	}
	return name + ".html"
}

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f]`)
	repeatedWhitespace   = regexp.MustCompile(`\s+`)
)

// SanitizeFilename replaces characters that are unsafe in file names.
//
// Path separators, reserved punctuation and control characters become
// underscores and whitespace runs collapse to one space. Leading and
// trailing dots and spaces are removed, so the result is never a hidden
// file and may be empty.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = repeatedWhitespace.ReplaceAllString(name, " ")
	return strings.Trim(name, ". ")
}

// ParseSongs reads a newline-delimited song list.
// Blank lines are ignored. Invalid UTF-8 anywhere in the input is an error.
func ParseSongs(r io.Reader) ([]Song, error) {
	var songs []Song
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if !utf8.ValidString(line) {
			return nil, Errorf(EINVALID, "line %d: invalid UTF-8", lineNo)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		song, err := ParseSong(line)
		if err != nil {
			return nil, Errorf(EINVALID, "line %d: %s", lineNo, ErrorMessage(err))
		}
		songs = append(songs, song)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}
