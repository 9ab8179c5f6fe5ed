package status

import (
	"encoding/json"
	"testing"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	sway "github.com/joshuarubin/go-sway"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		node string
		want config.Category
	}{
		{"xdg shell", viewXDG, config.CategoryNative},
		{"xwayland", viewXwayland, config.CategoryCompat},
		{"xwayland with app_id", `{"type":"con","app_id":"steam","window_properties":{"class":"Steam"}}`, config.CategoryCompat},
		{"empty workspace", viewNone, config.CategoryUnknown},
		{"split container", `{"type":"con","nodes":[]}`, config.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n sway.Node
			if err := json.Unmarshal([]byte(tt.node), &n); err != nil {
				t.Fatalf("decode node: %v", err)
			}
			if got := Classify(&n); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("no window", func(t *testing.T) {
		if got := Classify(nil); got != config.CategoryUnknown {
			t.Errorf("Classify(nil) = %s, want unknown", got)
		}
	})
}
