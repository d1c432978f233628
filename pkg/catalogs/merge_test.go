package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingCatalog() Catalog {
	return Catalog{
		{ID: "old_one", Name: "old one", BaseURL: "https://old.one/api.php/provide/vod", Group: "normal", Enabled: true, Priority: 3},
		{ID: "old_two", Name: "old two", BaseURL: "https://old.two/api.php/provide/vod", Group: "adult", Enabled: false, Priority: 7},
	}
}

func TestMerge(t *testing.T) {
	t.Run("appends sorted candidates after existing entries", func(t *testing.T) {
		existing := existingCatalog()
		candidates := []string{
			"https://zeta.tv/api.php/provide/vod",
			"http://alpha.tv/api.php/provide/vod",
			"https://beta.tv:8443/api.php/provide/vod/",
		}

		merged, added := Merge(existing, candidates)

		require.Len(t, merged, len(existing)+3)
		assert.Equal(t, existing, merged[:len(existing)])

		require.Len(t, added, 3)
		assert.Equal(t, "http://alpha.tv/api.php/provide/vod", added[0].BaseURL)
		assert.Equal(t, "https://beta.tv:8443/api.php/provide/vod/", added[1].BaseURL)
		assert.Equal(t, "https://zeta.tv/api.php/provide/vod", added[2].BaseURL)

		for i, e := range added {
			assert.Equal(t, 8+i, e.Priority, "priority of %s", e.BaseURL)
			assert.Equal(t, "normal", e.Group)
			assert.True(t, e.Enabled)
		}
		assert.Equal(t, "beta_tv_8443", added[1].ID)
		assert.Equal(t, "beta tv 8443", added[1].Name)
		assert.Equal(t, added, []Entry(merged[len(existing):]))
	})

	t.Run("empty catalog starts priorities at one", func(t *testing.T) {
		merged, added := Merge(nil, []string{"http://b.com/api.php/provide/vod", "http://a.com/api.php/provide/vod"})

		require.Len(t, merged, 2)
		assert.Equal(t, 1, added[0].Priority)
		assert.Equal(t, "a_com", added[0].ID)
		assert.Equal(t, 2, added[1].Priority)
		assert.Equal(t, "b_com", added[1].ID)
	})

	t.Run("already known url adds nothing", func(t *testing.T) {
		existing := existingCatalog()

		merged, added := Merge(existing, []string{"https://old.one/api.php/provide/vod"})

		assert.Empty(t, added)
		assert.Equal(t, existing, merged)
	})

	t.Run("no candidates", func(t *testing.T) {
		existing := existingCatalog()
		merged, added := Merge(existing, nil)
		assert.Empty(t, added)
		assert.Equal(t, existing, merged)
	})

	t.Run("duplicate candidates collapse", func(t *testing.T) {
		u := "http://dup.com/api.php/provide/vod"
		_, added := Merge(nil, []string{u, u})
		require.Len(t, added, 1)
		assert.Equal(t, 1, added[0].Priority)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		existing := existingCatalog()
		snapshot := existingCatalog()
		candidates := []string{"http://z.com/api.php/provide/vod", "http://a.com/api.php/provide/vod"}

		merged, _ := Merge(existing, candidates)
		merged[0].Name = "changed"

		assert.Equal(t, snapshot, existing)
		assert.Equal(t, []string{"http://z.com/api.php/provide/vod", "http://a.com/api.php/provide/vod"}, candidates)
	})

	t.Run("clashing ids get a suffix", func(t *testing.T) {
		existing := Catalog{{ID: "example_com", Name: "example com", BaseURL: "http://example.com/api.php/provide/vod", Priority: 1}}

		_, added := Merge(existing, []string{
			"https://example.com/api.php/provide/vod",
			"https://example.com/api.php/provide/vod/at/home",
		})

		require.Len(t, added, 2)
		assert.Equal(t, "example_com_2", added[0].ID)
		assert.Equal(t, "example com 2", added[0].Name)
		assert.Equal(t, "example_com_3", added[1].ID)
	})

	t.Run("options override group and enabled", func(t *testing.T) {
		_, added := Merge(nil, []string{"http://a.com/api.php/provide/vod"}, WithGroup("adult"), WithEnabled(false), WithGroup(""))

		require.Len(t, added, 1)
		assert.Equal(t, "adult", added[0].Group)
		assert.False(t, added[0].Enabled)
	})
}

func TestCatalogHelpers(t *testing.T) {
	cat := existingCatalog()

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, 7, cat.MaxPriority())
	assert.True(t, cat.Has("https://old.two/api.php/provide/vod"))
	assert.False(t, cat.Has("https://new.one/api.php/provide/vod"))
	assert.Contains(t, cat.BaseURLs(), "https://old.one/api.php/provide/vod")
	assert.Contains(t, cat.IDs(), "old_two")

	assert.Equal(t, 0, Catalog(nil).MaxPriority())
	assert.Equal(t, 0, Catalog{{Priority: -4}}.MaxPriority())
	assert.NotNil(t, Catalog(nil).Clone())
}
