package i18n

import (
	"sync"
	"testing"
)

func TestCatalogues(t *testing.T) {
	for locale, messages := range translations {
		for key := range EN {
			if _, ok := messages[key]; !ok {
				t.Errorf("%s: missing %s", locale, key)
			}
		}
	}
}

func TestL(t *testing.T) {
	defer SetLocale("en")

	if L("imported", 3) != "Imported 3 members" {
		t.Errorf("got: %s", L("imported", 3))
	}

	if err := SetLocale("xx"); err == nil {
		t.Error("unknown locale accepted")
	}

	if err := SetLocale("ar"); err != nil {
		t.Fatal(err)
	}

	if L("legend_title") != AR["legend_title"] {
		t.Errorf("got: %s", L("legend_title"))
	}
}

func TestSetLocale_Concurrent(t *testing.T) {
	defer SetLocale("en")

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				if i%2 == 0 {
					SetLocale("uk")
				} else if L("busy") == "" {
					t.Error("empty message")
				}
			}
		}()
	}

	wg.Wait()

	if Locale() != "uk" {
		t.Errorf("got: %s; expect: uk", Locale())
	}
}
