package document

// AddContentItem appends an empty item.
func AddContentItem(content []string) []string {
	next := make([]string, len(content), len(content)+1)
	copy(next, content)
	return append(next, "")
}

// RemoveContentItem drops the item at index. Out of range is a no-op.
func RemoveContentItem(content []string, index int) []string {
	next := make([]string, 0, len(content))
	for i, item := range content {
		if i != index {
			next = append(next, item)
		}
	}
	return next
}

// SetContentItem replaces the item at index. Out of range is a no-op.
func SetContentItem(content []string, index int, text string) []string {
	next := make([]string, len(content))
	copy(next, content)
	if index >= 0 && index < len(next) {
		next[index] = text
	}
	return next
}
