package matching

import "sort"

// Best 单一锚点只展示一个候选时取最优：
// 第一个 exact，没有 exact 则第一个找到的。
// 同级之间不再细分，先发现者优先（实现定义的顺序，不是契约）。
func Best(candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	for i := range candidates {
		if candidates[i].Type == MatchExact {
			return &candidates[i]
		}
	}

	return &candidates[0]
}

// Rank 列表排序：exact 在前，其余按距窗口天数升序。
// 稳定排序，平局保持发现顺序。
func Rank(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i].Type == MatchExact, out[j].Type == MatchExact
		if ei != ej {
			return ei
		}
		return out[i].DateDifferenceDays < out[j].DateDifferenceDays
	})

	return out
}
