package views

// ScrollTo returns the list offset that brings the item spanning
// [itemTop, itemTop+itemHeight) into a window of listHeight rows starting
// at offset. The offset only moves when the item is cut off: down so the
// item sits on the last row, or up so it sits on the first.
func ScrollTo(offset, itemTop, itemHeight, listHeight int) int {
	if listHeight <= 0 {
		return offset
	}
	if itemTop+itemHeight > offset+listHeight {
		return itemTop + itemHeight - listHeight
	}
	if itemTop < offset {
		return itemTop
	}
	return offset
}

// ClampOffset keeps offset inside the scrollable range of total rows
func ClampOffset(offset, total, listHeight int) int {
	maxOffset := total - listHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
