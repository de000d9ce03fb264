package router

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/exstem-console/internal/console"
	"github.com/stemsi/exstem-console/internal/handler"
	"github.com/stemsi/exstem-console/internal/response"
)

// Handlers groups the flows reachable from the main menu.
type Handlers struct {
	Doctor  *handler.DoctorHandler
	Student *handler.StudentHandler
}

// Router runs the main menu until the user exits or input ends.
type Router struct {
	p        *console.Prompter
	handlers *Handlers
	log      zerolog.Logger
}

// SetupRouter binds the menu entries to their handlers.
func SetupRouter(p *console.Prompter, handlers *Handlers, log zerolog.Logger) *Router {
	return &Router{
		p:        p,
		handlers: handlers,
		log:      log.With().Str("component", "router").Logger(),
	}
}

// Run shows the menu and dispatches choices:
//   - "1" authors an exam, then takes it as a student
//   - "2" takes the last exam
//   - "0" exits
//
// Anything else is reported and the menu shown again. Closed input ends the
// session without error.
func (r *Router) Run() error {
	r.p.Println("=== Simple Examination System ===")

	for {
		r.p.Println()
		r.p.Println("1) Doctor Mode")
		r.p.Println("2) Student Mode (take last created exam)")
		r.p.Println("0) Exit")

		choice, err := r.p.Line("Choose: ")
		if err != nil {
			return r.done(err)
		}

		switch strings.TrimSpace(choice) {
		case "0":
			r.log.Debug().Msg("Exit requested")
			return nil
		case "1":
			err = r.handlers.Doctor.Run()
		case "2":
			err = r.handlers.Student.Run()
		default:
			r.p.Fail(response.ErrInvalidChoice)
		}

		if err != nil {
			return r.done(err)
		}
	}
}

func (r *Router) done(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		r.log.Debug().Msg("Input closed")
		return nil
	}
	r.log.Error().Err(err).Msg("Session aborted")
	return err
}
