package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/terrace/pkg/config"
	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/render"
	"github.com/taigrr/terrace/pkg/terrain"
)

func newFlyCmd(opts *options) *cobra.Command {
	var (
		metricsAddr string
		fps         int
		start       string
	)

	cmd := &cobra.Command{
		Use:   "fly",
		Short: "Stream terrain around a viewer in the terminal",
		Long: "fly shows the regions around a viewer as boxes colored by level of " +
			"detail, with their surface edges. WASD moves, R/F climbs and sinks, " +
			"arrows turn the camera, M toggles meshes, Esc quits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			pos, err := parseVec3(start)
			if err != nil {
				return err
			}
			return runFly(cmd.Context(), cfg, pos, fps, metricsAddr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flags.IntVar(&fps, "fps", 30, "target frames per second")
	flags.StringVar(&start, "viewer", "0,40,0", "start position as x,y,z")
	return cmd
}

func runFly(ctx context.Context, cfg *config.Config, start math3d.Vec3, fps int, metricsAddr string) error {
	if fps <= 0 {
		return errors.New("fps must be positive").WithTag("fps", fps)
	}

	mgr, err := terrain.NewManager(cfg, density.NewTerrain())
	if err != nil {
		return err
	}
	defer mgr.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux}

		g.Go(func() error {
			logs.WithTag("addr", metricsAddr).Info("starting metrics server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.New("metrics server failed").
					WithTag("addr", metricsAddr).
					Wrap(err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	g.Go(func() error {
		defer cancel()
		f := newFlight(cfg, mgr, start, fps)
		return f.run(ctx)
	})
	return g.Wait()
}

// follower eases a position toward a target with one spring per axis.
type follower struct {
	spring harmonica.Spring
	pos    math3d.Vec3
	vel    math3d.Vec3
}

func newFollower(fps int, pos math3d.Vec3) *follower {
	return &follower{
		// Critically damped: the viewer glides without overshooting.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
		pos:    pos,
	}
}

func (f *follower) update(target math3d.Vec3) {
	f.pos.X, f.vel.X = f.spring.Update(f.pos.X, f.vel.X, target.X)
	f.pos.Y, f.vel.Y = f.spring.Update(f.pos.Y, f.vel.Y, target.Y)
	f.pos.Z, f.vel.Z = f.spring.Update(f.pos.Z, f.vel.Z, target.Z)
}

// flight is the state of one interactive session.
type flight struct {
	cfg *config.Config
	mgr *terrain.Manager
	fps int

	target math3d.Vec3
	viewer *follower
	camera *render.Camera
	fb     *render.Framebuffer

	width, height int
	meshes        bool
	culled        int
	lastErr       error
}

func newFlight(cfg *config.Config, mgr *terrain.Manager, start math3d.Vec3, fps int) *flight {
	camera := render.NewCamera(cfg.RootSize() * 2)
	camera.Pitch = -0.35

	return &flight{
		cfg:    cfg,
		mgr:    mgr,
		fps:    fps,
		target: start,
		viewer: newFollower(fps, start),
		camera: camera,
		fb:     render.NewFramebuffer(1, 2),
		meshes: true,
	}
}

func (f *flight) run(ctx context.Context) error {
	// Log lines would scroll the alternate screen.
	logs.SetLevel(logs.ParseLevel("error"))

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return errors.New("reading terminal size failed").Wrap(err)
	}
	if err := term.Start(); err != nil {
		return errors.New("starting terminal failed").Wrap(err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			logs.Warn(errors.New("terminal shutdown failed").Wrap(err))
		}
	}()

	term.EnterAltScreen()
	term.HideCursor()
	f.resize(term, width, height)

	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if quit := f.handle(term, ev); quit {
				return nil
			}

		case <-ticker.C:
			f.step()
			f.draw(term)
			if err := term.Display(); err != nil {
				return errors.New("drawing frame failed").Wrap(err)
			}
		}
	}
}

func (f *flight) resize(term *uv.Terminal, width, height int) {
	f.width, f.height = width, height
	term.Erase()
	term.Resize(width, height)
	f.fb.Resize(width, height*2)
	f.camera.Aspect = float64(width) / float64(max(1, height*2))
}

// handle applies one terminal event and reports whether to quit.
func (f *flight) handle(term *uv.Terminal, ev uv.Event) bool {
	step := float64(f.cfg.Terrain.RegionSize)
	forward := f.camera.Forward()
	forward.Y = 0
	forward = forward.Normalize()

	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		f.resize(term, ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("esc", "q", "ctrl+c"):
			return true
		case ev.MatchString("w"):
			f.target = f.target.Add(forward.Scale(step))
		case ev.MatchString("s"):
			f.target = f.target.Sub(forward.Scale(step))
		case ev.MatchString("d"):
			f.target = f.target.Add(f.camera.Right().Scale(step))
		case ev.MatchString("a"):
			f.target = f.target.Sub(f.camera.Right().Scale(step))
		case ev.MatchString("r"):
			f.target.Y += step
		case ev.MatchString("f"):
			f.target.Y -= step
		case ev.MatchString("left"):
			f.camera.Rotate(0, 0.1)
		case ev.MatchString("right"):
			f.camera.Rotate(0, -0.1)
		case ev.MatchString("up"):
			f.camera.Rotate(0.05, 0)
		case ev.MatchString("down"):
			f.camera.Rotate(-0.05, 0)
		case ev.MatchString("m"):
			f.meshes = !f.meshes
		}
	}
	return false
}

// step advances the viewer and streams regions for its new position.
func (f *flight) step() {
	f.viewer.update(f.target)

	f.mgr.Poll()
	if _, err := f.mgr.Update(f.viewer.pos); err != nil {
		f.lastErr = err
	}

	dist := f.cfg.RootSize() * 0.12
	f.camera.Position = f.viewer.pos.
		Sub(f.camera.Forward().Scale(dist)).
		Add(math3d.V3(0, dist*0.25, 0))
}

func (f *flight) draw(term *uv.Terminal) {
	area := uv.Rect(0, 0, f.width, f.height)

	f.fb.Clear(render.ColorBackground)
	w := render.NewWireframe(f.camera, f.fb)
	if tree := f.mgr.Tree(); tree != nil {
		f.culled = w.DrawTerrain(tree, f.mgr.Visible(), f.meshes).Culled
	}
	w.DrawMarker(f.viewer.pos, float64(f.cfg.Terrain.RegionSize)/2, render.ColorViewer)
	f.fb.Draw(term, area)

	stats := f.mgr.Stats()
	pos := f.viewer.pos
	status := fmt.Sprintf(" viewer %.0f,%.0f,%.0f  regions %d (%d culled)  triangles %d  batches %d",
		pos.X, pos.Y, pos.Z, stats.Visible, f.culled, stats.Triangles, stats.Batches)
	if f.mgr.Pending() {
		status += "  generating"
	}
	render.DrawText(term, area, 0, 0, status, render.ColorViewer)

	if f.lastErr != nil {
		render.DrawText(term, area, 0, f.height-1, " "+f.lastErr.Error(), render.LevelColor(6))
	}
}
