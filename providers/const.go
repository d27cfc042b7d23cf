package providers

import (
	"github.com/redexp/pedigree/interact"
	"github.com/redexp/pedigree/narrative"
	"github.com/redexp/pedigree/render"
	"github.com/redexp/pedigree/state"
	"github.com/tliron/commonlog"
	serv "github.com/tliron/glsp/server"
)

const (
	Name    = "pedigree"
	Version = "0.1.0"
)

var (
	server     *serv.Server
	root       *state.Root
	controller *interact.Controller
	renderer   *render.Renderer
	narrator   *narrative.Service
	settings   = DefaultSettings()
)

var log = commonlog.GetLogger("pedigree.providers")
