package relation

// Set 关联 ID 集合（频道 ↔ 钩子/封面模板多对多关系的草稿态）。
// map 保证 O(1) 去重与成员判断，order 记录插入顺序
type Set struct {
	members map[int64]struct{}
	order   []int64
}

func NewSet(ids ...int64) *Set {
	s := &Set{members: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add 加入 ID，重复加入忽略
func (s *Set) Add(id int64) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// Remove 按值移除
func (s *Set) Remove(id int64) {
	if _, ok := s.members[id]; !ok {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Contains(id int64) bool {
	_, ok := s.members[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.members)
}

// ToList 导出为切片，按插入顺序
func (s *Set) ToList() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}
