package descriptors

import (
	"testing"

	"github.com/ncdevice/ncdevice/internal/protocol"
)

func TestBuiltinClassesKeyedByDottedClassId(t *testing.T) {
	classes := BuiltinClasses()
	deviceManager, ok := classes["1.3.1"]
	if !ok {
		t.Fatal("expected NcDeviceManager at key 1.3.1")
	}
	if deviceManager.Name != "NcDeviceManager" {
		t.Errorf("Name = %q, want NcDeviceManager", deviceManager.Name)
	}
	if !deviceManager.ClassID.Equal(protocol.ClassId{1, 3, 1}) {
		t.Errorf("ClassID = %v, want [1 3 1]", deviceManager.ClassID)
	}
}

func TestBuiltinClassesDerivationChain(t *testing.T) {
	classes := BuiltinClasses()
	for _, id := range []string{"1.1", "1.2", "1.2.1", "1.3", "1.3.1", "1.3.2"} {
		cd, ok := classes[id]
		if !ok {
			t.Fatalf("missing class %s", id)
		}
		if !cd.ClassID.DerivedFrom(protocol.ClassId{1}) {
			t.Errorf("class %s not derived from root Object", id)
		}
	}
	if !classes["1.3.1"].ClassID.DerivedFrom(protocol.ClassId{1, 3}) {
		t.Error("NcDeviceManager should be derived from NcManager")
	}
	if classes["1.2"].ClassID.DerivedFrom(protocol.ClassId{1, 3}) {
		t.Error("NcWorker should not be derived from NcManager")
	}
}

func TestDatatypesCoverEveryKind(t *testing.T) {
	dt := Datatypes()
	cases := []struct {
		name string
		want any
	}{
		{"Boolean", protocol.DatatypeDescriptorPrimitive{}},
		{"Oid", protocol.DatatypeDescriptorTypeDef{}},
		{"MethodStatus", protocol.DatatypeDescriptorEnum{}},
		{"Manufacturer", protocol.DatatypeDescriptorStruct{}},
	}
	for _, c := range cases {
		v, ok := dt[c.name]
		if !ok {
			t.Fatalf("missing datatype %s", c.name)
		}
		switch c.want.(type) {
		case protocol.DatatypeDescriptorPrimitive:
			if _, ok := v.(protocol.DatatypeDescriptorPrimitive); !ok {
				t.Errorf("%s: wrong type %T", c.name, v)
			}
		case protocol.DatatypeDescriptorTypeDef:
			if _, ok := v.(protocol.DatatypeDescriptorTypeDef); !ok {
				t.Errorf("%s: wrong type %T", c.name, v)
			}
		case protocol.DatatypeDescriptorEnum:
			if _, ok := v.(protocol.DatatypeDescriptorEnum); !ok {
				t.Errorf("%s: wrong type %T", c.name, v)
			}
		case protocol.DatatypeDescriptorStruct:
			if _, ok := v.(protocol.DatatypeDescriptorStruct); !ok {
				t.Errorf("%s: wrong type %T", c.name, v)
			}
		}
	}
}

func TestPropertyIdDerivesFromElementId(t *testing.T) {
	dt := Datatypes()
	propertyID, ok := dt["PropertyId"].(protocol.DatatypeDescriptorStruct)
	if !ok {
		t.Fatal("PropertyId should be a struct datatype")
	}
	if propertyID.ParentType != "ElementId" {
		t.Errorf("PropertyId.ParentType = %q, want ElementId", propertyID.ParentType)
	}
	if len(propertyID.Fields) != 0 {
		t.Errorf("PropertyId should have no own fields, got %d", len(propertyID.Fields))
	}
}

func TestDatatypesIncludePropertyChangeTypeEnum(t *testing.T) {
	dt := Datatypes()
	pct, ok := dt["PropertyChangeType"].(protocol.DatatypeDescriptorEnum)
	if !ok {
		t.Fatal("expected PropertyChangeType enum datatype")
	}
	if len(pct.Items) != 4 {
		t.Errorf("len(Items) = %d, want 4 (ValueChanged/SequenceItemAdded/SequenceItemChanged/SequenceItemRemoved)", len(pct.Items))
	}
}

func TestDatatypesIncludeMethodResultAndEventDataStructs(t *testing.T) {
	dt := Datatypes()
	for _, name := range []string{
		"PropertyChangedEventData",
		"MethodResultBase", "MethodResultError", "MethodResultPropertyValue",
		"MethodResultBlockMemberDescriptors", "MethodResultClassDescriptor",
		"MethodResultDatatypeDescriptor", "MethodResultId", "MethodResultLength",
		"DatatypeDescriptorPrimitive", "DatatypeDescriptorTypeDef",
		"DatatypeDescriptorEnum", "DatatypeDescriptorStruct",
	} {
		if _, ok := dt[name]; !ok {
			t.Errorf("missing datatype %s", name)
		}
	}
}

func TestDeviceManagerAndClassManagerDeriveFromManager(t *testing.T) {
	classes := BuiltinClasses()
	for _, id := range []string{"1.3.1", "1.3.2"} {
		if !classes[id].ClassID.DerivedFrom(protocol.ClassId{1, 3}) {
			t.Errorf("class %s should derive from NcManager (1.3)", id)
		}
	}
}
