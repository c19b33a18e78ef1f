package commands

import (
	"strings"
	"testing"

	"hushnotice/addon"
	"hushnotice/notice"
)

func TestParse(t *testing.T) {
	tests := []struct {
		message string
		trigger string
		want    string
	}{
		{"!hideloginnotice", "!", ActionToggle},
		{"!HideLoginNotice", "!", ActionToggle},
		{"!status with trailing words", "!", ActionStatus},
		{"hideloginnotice", "!", ""},
		{"just chatting", "!", ""},
		{"", "!", ""},
		{".help", ".", ActionHelp},
	}

	for _, tt := range tests {
		if got := Parse(tt.message, tt.trigger); got != tt.want {
			t.Errorf("Parse(%q, %q) = %q, want %q", tt.message, tt.trigger, got, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	chatSystem := notice.NewHandlerMap()
	chatRouter := notice.NewHandlerMap()
	ctrl := notice.New(chatSystem, chatRouter, nil)
	a := addon.New("hushnotice", ctrl)

	if line := statusLine(a); !strings.Contains(line, "unloaded") {
		t.Errorf("Uninitialized addon status = %q, want the lifecycle state", line)
	}

	bus := addon.NewBus()
	a.Bind(bus)
	bus.Dispatch("hushnotice")

	if line := statusLine(a); !strings.Contains(line, "hidden") {
		t.Errorf("Status after load = %q, want %q in it", line, "hidden")
	}

	ctrl.Toggle()

	if line := statusLine(a); !strings.Contains(line, "shown") {
		t.Errorf("Status after toggle = %q, want %q in it", line, "shown")
	}
}
