package span

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// refinePrefixes runs the prefix-collapse post-pass: a Member(P, _)
// whose prefix type is statically width-1, or a Slice(P, _) whose
// prefix type's width equals the entry's own size, is a no-op access
// and collapses to the bare prefix.
func refinePrefixes(vm *ValueMap, sem hdlval.Semantics) {
	for i := 0; i < vm.Len(); i++ {
		e := vm.At(i)
		switch e.Index.Kind() {
		case KindExpression:
			m, ok := hdlval.AsMember(e.Value)
			if !ok {
				continue
			}
			t, ok := sem.SemanticType(m.Prefix())
			if !ok || sem.TypeSpanBitwidth(t) != 1 {
				continue
			}
			vm.SetAt(i, m.TakePrefix())

		case KindSlice:
			s, ok := hdlval.AsSlice(e.Value)
			if !ok {
				continue
			}
			t, ok := sem.SemanticType(s.Prefix())
			if !ok || sem.TypeSpanBitwidth(t) != e.Index.Size() {
				continue
			}
			vm.SetAt(i, s.TakePrefix())
		}
	}
}

// refineAllOthers runs the all-others post-pass: if no entry is a
// Slice and every entry's value structurally equals others, the whole
// map collapses to a single Range[0, maxBound] -> others. Reports
// whether the collapse happened.
func refineAllOthers(vm *ValueMap, maxBound uint64, others hdlval.Value) bool {
	if others == nil || vm.Len() == 0 {
		return false
	}
	for _, e := range vm.Entries() {
		if e.Index.Kind() == KindSlice {
			return false
		}
		if !e.Value.Equals(others) {
			return false
		}
	}
	vm.Reset()
	vm.Insert(NewValueIndex(KindRange, 0, maxBound), others.Clone())
	return true
}
