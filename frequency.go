package huff

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [AlphabetSize]uint64

// CountFrequencies consumes r one literal (BitsPerWord bits) at a time until
// the end of the stream and returns the resulting histogram.  The count for
// PseudoEOF is always exactly 1, so the table is never empty.
//
// The caller is responsible for rewinding r before encoding.
//
func CountFrequencies(r BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for {
		u, err := r.ReadBits(BitsPerWord)
		if err != nil {
			if isEndOfStream(err) {
				break
			}
			return freq, err
		}
		freq[u]++
	}
	freq[PseudoEOF] = 1
	return freq, nil
}

// Distinct returns the number of symbols with a positive count.
func (freq *FrequencyTable) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (freq *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total = addSaturating(total, count)
	}
	return total
}
