package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		url  string
		id   string
		name string
	}{
		{"http://example.com/api.php/provide/vod", "example_com", "example com"},
		{"https://www.example.co.uk/api.php/provide/vod/", "www_example_co_uk", "www example co uk"},
		{"http://cj.example.com:8080/api.php/provide/vod", "cj_example_com_8080", "cj example com 8080"},
		{"https://my-site--tv.net/api.php/provide/vod", "my_site_tv_net", "my site tv net"},
		{"http://影视.cn/api.php/provide/vod", "影视_cn", "影视 cn"},
		{"http://[::1]:8000/api.php/provide/vod", "1_8000", "1 8000"},
		{"example.org/api.php/provide/vod", "example_org_api_php_provide_vod", "example org api php provide vod"},
		{"file:///srv/api.php/provide/vod", "file_srv_api_php_provide_vod", "file srv api php provide vod"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, name := Identity(tt.url)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.name, name)
		})
	}
}
