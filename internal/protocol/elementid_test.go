package protocol

import "testing"

func TestClassIdDerivedFrom(t *testing.T) {
	tests := []struct {
		name string
		id   ClassId
		base ClassId
		want bool
	}{
		{"self", ClassId{1}, ClassId{1}, true},
		{"block derived from object", ClassId{1, 1}, ClassId{1}, true},
		{"device manager derived from manager", ClassId{1, 3, 1}, ClassId{1, 3}, true},
		{"device manager derived from object", ClassId{1, 3, 1}, ClassId{1}, true},
		{"worker not derived from manager", ClassId{1, 2}, ClassId{1, 3}, false},
		{"base longer than id", ClassId{1}, ClassId{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.DerivedFrom(tt.base); got != tt.want {
				t.Errorf("DerivedFrom(%v, %v) = %v, want %v", tt.id, tt.base, got, tt.want)
			}
		})
	}
}

func TestClassIdString(t *testing.T) {
	if got := (ClassId{1, 3, 1}).String(); got != "1.3.1" {
		t.Errorf("String() = %q, want %q", got, "1.3.1")
	}
}

func TestClassIdParent(t *testing.T) {
	if got := (ClassId{1, 3, 1}).Parent(); got.String() != "1.3" {
		t.Errorf("Parent() = %v, want [1 3]", got)
	}
	if got := (ClassId{1}).Parent(); got != nil {
		t.Errorf("Parent() of root class = %v, want nil", got)
	}
}

func TestClassIdEqual(t *testing.T) {
	if !(ClassId{1, 1}).Equal(ClassId{1, 1}) {
		t.Error("expected equal class ids to compare equal")
	}
	if (ClassId{1, 1}).Equal(ClassId{1, 2}) {
		t.Error("expected different class ids to compare unequal")
	}
}
