package ast

import "testing"

// TestDictLikeOperations builds a document purely via the mutator API and
// reads it back through the accessor API end to end (existence checks, key
// iteration, missing-key lookup, array iteration, tags and annotations)
// without going through the parser.
func TestDictLikeOperations(t *testing.T) {
	admin := NewObject()
	ObjectSet(admin, "id", NewNode(NewUUID("550e8400-e29b-41d4-a716-446655440000")))
	ObjectSet(admin, "email", NewNode(NewString("admin@example.com")))
	adminNode := NewNode(admin)
	adminNode.AddTag("user")
	role := adminNode.AddAnnotation("role")
	role.PushArg(NewString("superuser"))

	ids := NewArray()
	ArrayPush(ids, NewNode(NewInt(1)))
	ArrayPush(ids, NewNode(NewInt(2)))
	ArrayPush(ids, NewNode(NewInt(3)))

	config := NewObject()
	ObjectSet(config, "name", NewNode(NewString("demo")))
	ObjectSet(config, "version", NewNode(NewString("1.0.0")))
	ObjectSet(config, "ids", NewNode(ids))
	ObjectSet(config, "admin", adminNode)

	doc := New()
	doc.PushValue(NewNode(config))

	cfgNode, ok := doc.Get(0)
	if !ok {
		t.Fatal("Get(0) missing")
	}
	obj := cfgNode.Value.AsObject()

	if !obj.Has("name") {
		t.Error(`expected "name" to exist`)
	}
	if obj.Has("missing_key") {
		t.Error(`expected "missing_key" to be absent`)
	}
	if _, ok := obj.Get("missing_key"); ok {
		t.Error("Get(missing_key) should report not-found")
	}

	wantKeys := []string{"name", "version", "ids", "admin"}
	if obj.Len() != len(wantKeys) {
		t.Fatalf("Len() = %d, want %d", obj.Len(), len(wantKeys))
	}
	for i, want := range wantKeys {
		got, ok := obj.KeyAt(i)
		if !ok || got != want {
			t.Errorf("KeyAt(%d) = %q, %v, want %q", i, got, ok, want)
		}
	}

	idsNode, ok := obj.Get("ids")
	if !ok {
		t.Fatal(`"ids" not found`)
	}
	idsArr := idsNode.Value.AsArray()
	if idsArr.Len() != 3 {
		t.Fatalf("ids array Len() = %d, want 3", idsArr.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		item, ok := idsArr.Get(i)
		if !ok || item.Value.AsInt() != want {
			t.Errorf("ids[%d] = %v, want %d", i, item, want)
		}
	}

	adminGot, ok := obj.Get("admin")
	if !ok {
		t.Fatal(`"admin" not found`)
	}
	if adminGot.TagCount() != 1 {
		t.Fatalf("admin TagCount() = %d, want 1", adminGot.TagCount())
	}
	if !adminGot.HasTag("user") {
		t.Error(`expected admin to have tag "user"`)
	}
	if adminGot.HasTag("nonexistent") {
		t.Error(`expected admin not to have tag "nonexistent"`)
	}
	roleAnn, ok := adminGot.FindAnnotation("role")
	if !ok {
		t.Fatal(`expected admin to have annotation "role"`)
	}
	if roleAnn.ArgCount() != 1 {
		t.Fatalf("role ArgCount() = %d, want 1", roleAnn.ArgCount())
	}
	arg0, ok := roleAnn.Arg(0)
	if !ok || arg0.AsString() != "superuser" {
		t.Errorf("role arg 0 = %v, want %q", arg0, "superuser")
	}
}

// TestFieldsAccess exercises the typed extractors across every Value
// variant and the dot-path navigator.
func TestFieldsAccess(t *testing.T) {
	deep := NewObject()
	ObjectSet(deep, "value", NewNode(NewString("found it!")))
	nested := NewObject()
	ObjectSet(nested, "deep", NewNode(deep))

	ids := NewArray()
	ArrayPush(ids, NewNode(NewInt(1)))
	ArrayPush(ids, NewNode(NewInt(2)))
	ArrayPush(ids, NewNode(NewInt(3)))

	config := NewObject()
	ObjectSet(config, "name", NewNode(NewString("demo")))
	ObjectSet(config, "version", NewNode(NewString("1.0.0")))
	ObjectSet(config, "ids", NewNode(ids))
	ObjectSet(config, "nested", NewNode(nested))

	doc := New()
	doc.PushValue(NewNode(config))

	cfg, ok := doc.GetKey("config")
	if ok || cfg != nil {
		t.Error(`document has no "config" key at its root — it IS the root object`)
	}

	nameNode, ok := doc.GetKey("name")
	if !ok || nameNode.Value.AsString() != "demo" {
		t.Errorf("GetKey(name) = %v, %v, want %q", nameNode, ok, "demo")
	}
	versionNode, ok := doc.GetKey("version")
	if !ok || versionNode.Value.AsString() != "1.0.0" {
		t.Errorf("GetKey(version) = %v, %v, want %q", versionNode, ok, "1.0.0")
	}

	idsNode, ok := doc.GetKey("ids")
	if !ok {
		t.Fatal("GetKey(ids) not found")
	}
	first, ok := idsNode.Value.AsArray().Get(0)
	if !ok || first.Value.AsInt() != 1 {
		t.Errorf("ids[0] = %v, %v, want 1", first, ok)
	}

	deepNode, ok := doc.GetPath("nested.deep.value")
	if !ok || deepNode.Value.AsString() != "found it!" {
		t.Errorf("GetPath(nested.deep.value) = %v, %v, want %q", deepNode, ok, "found it!")
	}

	if _, ok := doc.GetPath("nested.missing.value"); ok {
		t.Error("GetPath through a missing segment should report not-found")
	}
	if _, ok := doc.GetPath("name.extra"); ok {
		t.Error("GetPath through a non-Object segment should report not-found")
	}

	typed := NewObject()
	ObjectSet(typed, "n", NewNode(NewNull()))
	ObjectSet(typed, "b", NewNode(NewBool(true)))
	ObjectSet(typed, "i", NewNode(NewInt(-7)))
	ObjectSet(typed, "f", NewNode(NewFloat(2.5)))
	ObjectSet(typed, "d", NewNode(NewDecimal("19.99")))
	ObjectSet(typed, "s", NewNode(NewString("hi")))
	ObjectSet(typed, "by", NewNode(NewBytes([]byte{1, 2, 3})))
	ObjectSet(typed, "t", NewNode(NewDateTime("2025-01-15T10:30:00Z")))
	ObjectSet(typed, "r", NewNode(NewDuration("PT30S")))
	ObjectSet(typed, "u", NewNode(NewUUID("550e8400-e29b-41d4-a716-446655440000")))
	typedObj := typed.AsObject()

	cases := []struct {
		key      string
		wantKind Kind
	}{
		{"n", KindNull}, {"b", KindBool}, {"i", KindInt}, {"f", KindFloat},
		{"d", KindDecimal}, {"s", KindString}, {"by", KindBytes},
		{"t", KindDateTime}, {"r", KindDuration}, {"u", KindUUID},
	}
	for _, c := range cases {
		n, ok := typedObj.Get(c.key)
		if !ok {
			t.Fatalf("Get(%q) missing", c.key)
		}
		if n.Value.Kind != c.wantKind {
			t.Errorf("Get(%q).Kind = %v, want %v", c.key, n.Value.Kind, c.wantKind)
		}
	}

	n, _ := typedObj.Get("b")
	if !n.Value.AsBool() {
		t.Error("AsBool() = false, want true")
	}
	n, _ = typedObj.Get("i")
	if n.Value.AsInt() != -7 {
		t.Errorf("AsInt() = %d, want -7", n.Value.AsInt())
	}
	n, _ = typedObj.Get("f")
	if n.Value.AsFloat() != 2.5 {
		t.Errorf("AsFloat() = %v, want 2.5", n.Value.AsFloat())
	}
	n, _ = typedObj.Get("by")
	if string(n.Value.AsBytes()) != "\x01\x02\x03" {
		t.Errorf("AsBytes() = %v, want [1 2 3]", n.Value.AsBytes())
	}
	for _, key := range []string{"d", "s", "t", "r", "u"} {
		n, _ = typedObj.Get(key)
		if n.Value.AsString() == "" {
			t.Errorf("AsString() for %q was empty", key)
		}
	}

	// Wrong-kind accessors return zero values rather than panicking.
	n, _ = typedObj.Get("s")
	if n.Value.AsInt() != 0 || n.Value.AsBool() != false || n.Value.AsArray() != nil {
		t.Error("wrong-kind accessors on a String value should return zero values")
	}
}
