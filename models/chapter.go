package models

// ChapterEntry is one chapter marker taken from a menu track.
//
// Key is the raw offset key (e.g. "00_04_30_000"), Timecode its canonical
// HH:MM:SS.mmm form and Label the label exactly as the extractor reported it,
// language prefix included.
type ChapterEntry struct {
	Key      string `json:"key"`
	Timecode string `json:"timecode"`
	Label    string `json:"label"`
}

// Chapter is one chapter as written to a chapter text file.
type Chapter struct {
	Timecode string `json:"timecode"`
	Name     string `json:"name"`
}
