package pathenv

// Distribute assigns pool entries across bucketCount buckets with a
// greedy length balance: each entry, taken strictly in pool order, goes
// to the bucket with the smallest running serialized length, ties to the
// lowest ordinal. Processing in pool order preserves the pool's relative
// order inside every bucket; two entries landing in different buckets
// have no defined cross-bucket order. The greedy fit bounds the spread
// between the fullest and emptiest bucket by the largest single entry.
func (s Syntax) Distribute(pool []string, bucketCount int) [][]string {
	if bucketCount < 1 {
		bucketCount = 1
	}
	buckets := make([][]string, bucketCount)
	lengths := make([]int, bucketCount)

	for _, e := range pool {
		target := 0
		for i := 1; i < bucketCount; i++ {
			if lengths[i] < lengths[target] {
				target = i
			}
		}
		cost := len(e)
		if len(buckets[target]) > 0 {
			cost += len(s.Delimiter)
		}
		buckets[target] = append(buckets[target], e)
		lengths[target] += cost
	}
	return buckets
}
