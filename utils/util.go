package utils

// 找出ID对应的数据。
// 如果ids为空则返回data中的所有数据，
// 如果某个ID不存在则将其记录到失败列表中。
func Find[K comparable, T any](dataMap map[K]T, data []T, ids []K) (okData []T, failedIDs []K) {
	if len(ids) == 0 {
		return data, nil
	}
	okData = make([]T, 0, len(ids))
	failedIDs = make([]K, 0, len(ids))
	for _, id := range ids {
		if d, ok := dataMap[id]; ok {
			okData = append(okData, d)
		} else {
			failedIDs = append(failedIDs, id)
		}
	}
	return
}

// CloneFloats 复制浮点数序列。
// 历史序列在快照中只读，导出时复制以隔离调用方。
func CloneFloats(values []float64) []float64 {
	cloned := make([]float64, len(values))
	copy(cloned, values)
	return cloned
}
