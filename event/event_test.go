package event_test

import (
	"github.com/DeluxeOwl/evolve/event"
	"github.com/DeluxeOwl/evolve/version"
)

//sumtype:decl
type chatEvent interface {
	event.Any
	isChatEvent()
}

type chatCreated struct {
	Title string `json:"title"`
}

func (chatCreated) EventName() event.Name         { return "chat" }
func (chatCreated) EventVersion() version.Version { return version.MustNew(1) }
func (chatCreated) isChatEvent()                  {}

type chatCreatedV2 struct {
	Title  string `json:"title"`
	Public bool   `json:"public"`
}

func (*chatCreatedV2) EventName() event.Name         { return "chat" }
func (*chatCreatedV2) EventVersion() version.Version { return version.MustNew(2) }
func (*chatCreatedV2) isChatEvent()                  {}

// Same name and version as chatCreated, different type.
type chatImpostor struct{}

func (chatImpostor) EventName() event.Name         { return "chat" }
func (chatImpostor) EventVersion() version.Version { return version.MustNew(1) }
func (chatImpostor) isChatEvent()                  {}

type fileUploaded struct {
	Path string `json:"path"`
}

func (*fileUploaded) EventName() event.Name         { return "file" }
func (*fileUploaded) EventVersion() version.Version { return version.MustNew(1) }
func (*fileUploaded) isChatEvent()                  {}

type rawChat = event.Raw[chatCreated, map[string]any]

type rawChatEvent struct {
	rawChat
}

func (rawChatEvent) isChatEvent() {}
