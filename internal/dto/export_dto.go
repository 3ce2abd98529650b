package dto

// WordExport carries the rendered report and its download filename.
type WordExport struct {
	FileName string
	Content  []byte
}
