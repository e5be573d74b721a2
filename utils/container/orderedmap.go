package container

// OrderedMap 保持插入顺序的关联表
// 功能：在map查找的基础上维护键的插入顺序，遍历顺序与插入顺序一致
// 说明：宏观经济历史按指标名组织时间序列，输出时要求保持指标的注册顺序，
// Go内置map不保证遍历顺序，因此用键序切片加map实现
type OrderedMap[K comparable, V any] struct {
	keys []K
	data map[K]V
}

// NewOrderedMap 创建有序关联表
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys: make([]K, 0),
		data: make(map[K]V),
	}
}

// Len 获取元素个数
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Get 获取键对应的值
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Set 设置键值，新键追加到键序末尾
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
}

// Keys 按插入顺序获取所有键
// 说明：返回副本，调用方修改不影响内部状态
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range 按插入顺序遍历所有键值对
// 参数：f-回调函数，返回false时终止遍历
func (m *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	for _, k := range m.keys {
		if !f(k, m.data[k]) {
			return
		}
	}
}

// Clone 复制有序关联表
// 参数：cloneValue-值的复制函数，nil则浅拷贝值
func (m *OrderedMap[K, V]) Clone(cloneValue func(V) V) *OrderedMap[K, V] {
	c := &OrderedMap[K, V]{
		keys: make([]K, len(m.keys)),
		data: make(map[K]V, len(m.data)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.data {
		if cloneValue != nil {
			v = cloneValue(v)
		}
		c.data[k] = v
	}
	return c
}
