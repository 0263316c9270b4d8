package store

// SaveText atomically replaces path with text. Used for generated case and
// expected-output files.
func SaveText(path, text string) error {
	return writeFile(path, []byte(text), resultFileMode)
}
