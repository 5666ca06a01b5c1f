package review

// GuidelineFile is a guideline discovered in one of the search directories.
type GuidelineFile struct {
	Path string // cleaned absolute path
	Dir  string // search directory it was found in
}

// Document is the assembled review document.
type Document struct {
	Text       string
	Guidelines int // number of Include lines
	Inputs     int // number of Embed lines
}
