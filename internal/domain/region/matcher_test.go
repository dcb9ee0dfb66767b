package region

import "testing"

func feat(props map[string]interface{}) *Feature {
	return &Feature{Type: "Feature", Properties: props}
}

func TestBuildIndex_RegistersNameFieldsInPriorityOrder(t *testing.T) {
	f := feat(map[string]interface{}{
		"NAMOBJ":   "JAWA BARAT",
		"WADMPR":   "Jawa Barat",
		"Provinsi": "JABAR",
	})
	idx := BuildIndex([]*Feature{f})

	for _, key := range []string{"JAWA BARAT", "JABAR"} {
		got, ok := idx.Resolve(key)
		if !ok || got != f {
			t.Errorf("Resolve(%q) should find the feature", key)
		}
	}
}

func TestBuildIndex_SkipsEmptyAndNonStringFields(t *testing.T) {
	idx := BuildIndex([]*Feature{
		feat(map[string]interface{}{"NAMOBJ": "", "name": "  ", "WADMPR": 42}),
	})
	if idx.Len() != 0 {
		t.Fatalf("index should be empty, has %d keys", idx.Len())
	}
}

func TestResolve_ExactBeatsPartial(t *testing.T) {
	riau := feat(map[string]interface{}{"NAMOBJ": "RIAU"})
	kepRiau := feat(map[string]interface{}{"NAMOBJ": "KEPULAUAN RIAU"})
	// "RIAU" is a substring of "KEPULAUAN RIAU"; registration order puts the
	// partial candidate first so only an exact hit can explain the result.
	idx := BuildIndex([]*Feature{kepRiau, riau})

	got, ok := idx.Resolve("RIAU")
	if !ok || got != riau {
		t.Fatal("exact key match must win over an earlier partial match")
	}
}

func TestResolve_PartialSubstringBothDirections(t *testing.T) {
	f := feat(map[string]interface{}{"NAMOBJ": "KEPULAUAN RIAU"})
	idx := BuildIndex([]*Feature{f})

	// Input contained in key.
	if _, ok := idx.Resolve("KEP. RIAU"); ok {
		t.Fatal("unnormalized input with a dot should not match")
	}
	if got, ok := idx.Resolve("RIAU"); !ok || got != f {
		t.Fatal("input contained in key should match")
	}
	// Key contained in input.
	if got, ok := idx.Resolve("PROVINSI KEPULAUAN RIAU INDONESIA"); !ok || got != f {
		t.Fatal("key contained in input should match")
	}
}

func TestResolve_FirstHitWinsOnPartial(t *testing.T) {
	a := feat(map[string]interface{}{"NAMOBJ": "SULAWESI UTARA"})
	b := feat(map[string]interface{}{"NAMOBJ": "SULAWESI SELATAN"})
	idx := BuildIndex([]*Feature{a, b})

	// Both keys contain "SULAWESI"; the first registered key wins.
	got, ok := idx.Resolve("SULAWESI")
	if !ok || got != a {
		t.Fatal("partial match must return the first registered key")
	}
}

func TestResolve_NotFound(t *testing.T) {
	idx := BuildIndex([]*Feature{feat(map[string]interface{}{"NAMOBJ": "BALI"})})
	if _, ok := idx.Resolve("JAWA TIMUR"); ok {
		t.Fatal("unrelated name should not resolve")
	}
	if _, ok := idx.Resolve(""); ok {
		t.Fatal("empty name should not resolve")
	}
}

func TestBuildIndex_LastWriteWinsAcrossFeatures(t *testing.T) {
	first := feat(map[string]interface{}{"NAMOBJ": "PAPUA"})
	second := feat(map[string]interface{}{"NAMOBJ": "PAPUA"})
	idx := BuildIndex([]*Feature{first, second})

	got, ok := idx.Resolve("PAPUA")
	if !ok || got != second {
		t.Fatal("colliding key must resolve to the later feature")
	}
	if idx.Len() != 1 {
		t.Fatalf("collision should not duplicate keys, got %d", idx.Len())
	}
}

func TestBuildIndex_WithNormalizerRegistersNormalizedKey(t *testing.T) {
	f := feat(map[string]interface{}{"NAMOBJ": "DKI JAKARTA"})
	idx := BuildIndex([]*Feature{f}, WithNormalizer(StatisticsNormalizer()))

	got, ok := idx.Resolve("JAKARTA")
	if !ok || got != f {
		t.Fatal("normalized key JAKARTA should resolve to the DKI JAKARTA feature")
	}
}

func TestResolve_Scenario_KepRiauAfterNormalization(t *testing.T) {
	f := feat(map[string]interface{}{"NAMOBJ": "KEPULAUAN RIAU"})
	idx := BuildIndex([]*Feature{f})

	normalized := EducationNormalizer().Normalize("KEP. RIAU")
	got, ok := idx.Resolve(normalized)
	if !ok || got != f {
		t.Fatalf("normalized %q should resolve to KEPULAUAN RIAU", normalized)
	}
}
