// Package app wires the satellite together: one receiver, one renderer,
// one presentation sink and the optional HTTP monitor, with a shared
// logger passed through construction.
package app

import (
	"context"
	"sync"

	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/receiver"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/render"
	"github.com/PiotrTopa/cyberpank-prius-gen2-computer-sub001/internal/web"
)

type App struct {
	Receiver receiver.Receiver
	Renderer *render.Renderer
	Sink     render.Sink
	Web      *web.Server // nil disables the monitor
	FPS      int
	Log      Logger
}

func New(recv receiver.Receiver, rend *render.Renderer, sink render.Sink, webSrv *web.Server, fps int, log Logger) *App {
	return &App{Receiver: recv, Renderer: rend, Sink: sink, Web: webSrv, FPS: fps, Log: log}
}

// Run starts every subsystem and blocks until the context is cancelled
// or the sink's event loop ends (the development window was closed).
// Only sink and receiver startup failures are fatal; a monitor that
// cannot bind its port is logged and skipped.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.Sink.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := a.Sink.Stop(); err != nil {
			a.Log.Errorf("app", "sink stop: %v", err)
		}
	}()

	if err := a.Receiver.Start(); err != nil {
		return err
	}
	defer a.Receiver.Stop()

	if a.Web != nil {
		if err := a.Web.Start(ctx); err != nil {
			a.Log.Errorf("app", "monitor server: %v", err)
		} else {
			defer func() { _ = a.Web.Stop() }()
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Renderer.RunLoop(ctx, a.FPS)
	}()

	err := a.Sink.Run(ctx)
	cancel()
	wg.Wait()
	return err
}
