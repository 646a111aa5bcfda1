package relation

import "testing"

// 重复 Add 只保留一份
func TestSet_AddDuplicate(t *testing.T) {
	s := NewSet()
	s.Add(5)
	s.Add(5)

	list := s.ToList()
	if len(list) != 1 || list[0] != 5 {
		t.Fatalf("ToList() = %v, want [5]", list)
	}
}

func TestSet_RemoveContains(t *testing.T) {
	s := NewSet(5)
	s.Remove(5)

	if s.Contains(5) {
		t.Error("Contains(5) = true after Remove(5)")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}

	// 移除不存在的元素不报错
	s.Remove(42)
}

// 插入顺序保留，中间移除不打乱其余顺序
func TestSet_Order(t *testing.T) {
	s := NewSet(3, 1, 2)
	s.Add(1)
	s.Remove(1)
	s.Add(4)

	got := s.ToList()
	want := []int64{3, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("ToList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToList() = %v, want %v", got, want)
		}
	}
}
