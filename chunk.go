package pagecheck

// DefaultChunkSize is the maximum number of characters sent to the grammar
// service in one request.
const DefaultChunkSize = 2000

// SplitChunks splits text into contiguous chunks of at most size characters.
// Characters are Unicode code points, so a chunk never ends inside a UTF-8
// sequence. The final chunk may be shorter. Concatenating the chunks in
// order yields text exactly. A word may be split across two chunks.
//
// A size of zero or less uses DefaultChunkSize.
func SplitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
