package providers

import (
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/narrative"
	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/state"
	. "github.com/redexp/pedigree/types"
	"github.com/redexp/pedigree/utils"
	proto "github.com/tliron/glsp/protocol_3_16"
)

// Setup creates the session. It runs once before the server starts and again in tests.
func Setup(s Settings, newId utils.IdGenerator) {
	settings = s

	if s.Locale != "" {
		err := i18n.SetLocale(s.Locale)

		if err != nil {
			log.Warningf("locale %s: %s", s.Locale, err)
		}
	}

	root = state.CreateRoot(newId)
	root.ShowFootnotes = s.ShowFootnotes
	controller = interact.NewController(root)
	renderer = render.NewRenderer(nil)

	client, err := narrative.NewOpenAI(s.Narrative)

	if err != nil {
		log.Warningf("narrative disabled: %s", err)
		narrator = narrative.NewService(nil)
	} else {
		narrator = narrative.NewService(client)
	}

	changeDebouncer := debounce.New(100 * time.Millisecond)

	root.OnUpdate(func() {
		changeDebouncer(notifyChange)
	})
}

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	if root == nil {
		Setup(settings, nil)
	}

	options, err := GetClientConfiguration(params.InitializationOptions)

	if err == nil {
		if options.Locale != "" {
			i18n.SetLocale(options.Locale)
		}

		if options.ShowFootnotes != nil {
			root.ShowFootnotes = *options.ShowFootnotes
		}
	}

	trackContext(ctx)

	version := Version

	return &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
		Capabilities: proto.ServerCapabilities{},
	}, nil
}

func Initialized(ctx *Ctx, params *proto.InitializedParams) error {
	return nil
}

func Shutdown(ctx *Ctx) error {
	return nil
}

func SetTrace(ctx *Ctx, params *proto.SetTraceParams) error {
	return nil
}

func CancelRequest(ctx *Ctx, params *proto.CancelParams) error {
	return nil
}

const DidChangeMethod = "pedigree/didChange"

type DidChangeParams struct {
	Members     int     `json:"members"`
	Highlighted string  `json:"highlighted,omitempty"`
	Scale       float64 `json:"scale"`
}

var changeContext atomic.Pointer[Ctx]

// trackContext remembers the connection used for change notifications.
func trackContext(ctx *Ctx) {
	if ctx != nil && ctx.Notify != nil {
		changeContext.Store(ctx)
	}
}

func notifyChange() {
	ctx := changeContext.Load()

	if ctx == nil {
		return
	}

	root.UpdateLock.Lock()
	params := DidChangeParams{
		Members:     root.Store.Len(),
		Highlighted: root.Highlighted,
		Scale:       root.View.Scale,
	}
	root.UpdateLock.Unlock()

	ctx.Notify(DidChangeMethod, params)
}
