//go:build windows
// +build windows

package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/debug"
	"golang.org/x/sys/windows/svc/eventlog"
	"golang.org/x/sys/windows/svc/mgr"
)

const (
	ServiceName        = "ESignaturesGateway"
	ServiceDisplayName = "eSignatures.io Gateway"
	ServiceDescription = "Gateway for sending contracts and querying templates on eSignatures.io"

	// Event ids written to the Windows event log
	eventLifecycle = 1
	eventFailure   = 2

	stopPollInterval = 300 * time.Millisecond
	stopTimeout      = 30 * time.Second
)

// The SCM restarts the gateway after a crash, backing off, and forgets
// previous failures after a day.
var (
	recoveryActions = []mgr.RecoveryAction{
		{Type: mgr.ServiceRestart, Delay: 5 * time.Second},
		{Type: mgr.ServiceRestart, Delay: 10 * time.Second},
		{Type: mgr.ServiceRestart, Delay: 30 * time.Second},
	}
	recoveryResetPeriod = 24 * time.Hour
)

var errStopTimeout = errors.New("timed out waiting for service to stop")

// gatewayService adapts Application to the service control manager.
type gatewayService struct {
	app    *Application
	events debug.Log
}

func (s *gatewayService) Execute(_ []string, requests <-chan svc.ChangeRequest, status chan<- svc.Status) (bool, uint32) {
	status <- svc.Status{State: svc.StartPending}
	go s.app.Run()
	status <- svc.Status{State: svc.Running, Accepts: svc.AcceptStop | svc.AcceptShutdown}
	s.events.Info(eventLifecycle, "gateway running")

	for {
		select {
		case <-s.app.doneChan:
			// fx failed to start or the app stopped on its own; let the SCM
			// recovery actions decide whether to restart.
			s.events.Error(eventFailure, "gateway exited unexpectedly")
			status <- svc.Status{State: svc.StopPending}
			return true, 1

		case req := <-requests:
			switch req.Cmd {
			case svc.Interrogate:
				status <- req.CurrentStatus
			case svc.Stop, svc.Shutdown:
				status <- svc.Status{State: svc.StopPending}
				s.events.Info(eventLifecycle, "gateway stopping")
				s.app.Shutdown()
				s.app.Wait()
				return false, 0
			default:
				s.events.Warning(eventFailure, fmt.Sprintf("ignoring control request %d", req.Cmd))
			}
		}
	}
}

// RunService hands app to the service control manager, or to a console
// emulation of it when isDebug is set.
func RunService(isDebug bool, app *Application) {
	events, run, err := serviceRuntime(isDebug)
	if err != nil {
		log.Printf("Failed to open event log: %v", err)
		return
	}
	defer events.Close()

	if err := run(ServiceName, &gatewayService{app: app, events: events}); err != nil {
		events.Error(eventFailure, fmt.Sprintf("service failed: %v", err))
		return
	}
	events.Info(eventLifecycle, "service stopped")
}

func serviceRuntime(isDebug bool) (debug.Log, func(string, svc.Handler) error, error) {
	if isDebug {
		return debug.New(ServiceName), debug.Run, nil
	}
	events, err := eventlog.Open(ServiceName)
	if err != nil {
		return nil, nil, err
	}
	return events, svc.Run, nil
}

// withService opens the gateway service and passes it to fn.
func withService(fn func(s *mgr.Service) error) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to service manager: %w", err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(ServiceName)
	if err != nil {
		return fmt.Errorf("service %s is not installed: %w", ServiceName, err)
	}
	defer s.Close()

	return fn(s)
}

// InstallService registers exePath as an auto-start service. Failing to set
// up the event source or recovery actions leaves a working service and is
// only reported.
func InstallService(exePath string) error {
	m, err := mgr.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to service manager: %w", err)
	}
	defer m.Disconnect()

	if existing, err := m.OpenService(ServiceName); err == nil {
		existing.Close()
		return fmt.Errorf("service %s already exists", ServiceName)
	}

	s, err := m.CreateService(ServiceName, exePath, mgr.Config{
		DisplayName: ServiceDisplayName,
		Description: ServiceDescription,
		StartType:   mgr.StartAutomatic,
	})
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	defer s.Close()

	if err := eventlog.InstallAsEventCreate(ServiceName, eventlog.Error|eventlog.Warning|eventlog.Info); err != nil {
		log.Printf("Warning: event log source not registered: %v", err)
	}
	if err := s.SetRecoveryActions(recoveryActions, uint32(recoveryResetPeriod.Seconds())); err != nil {
		log.Printf("Warning: recovery actions not set: %v", err)
	}

	return nil
}

// UninstallService stops and deletes the service and its event source.
func UninstallService() error {
	return withService(func(s *mgr.Service) error {
		if err := stopAndWait(s); err != nil {
			log.Printf("Warning: service not stopped before removal: %v", err)
		}
		if err := s.Delete(); err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}
		_ = eventlog.Remove(ServiceName)
		return nil
	})
}

// StartService starts the service. Starting a running service is a no-op.
func StartService() error {
	return withService(func(s *mgr.Service) error {
		st, err := s.Query()
		if err == nil && st.State == svc.Running {
			return nil
		}
		return s.Start()
	})
}

// StopService stops the service and waits until the SCM reports it stopped.
func StopService() error {
	return withService(func(s *mgr.Service) error {
		return stopAndWait(s)
	})
}

func stopAndWait(s *mgr.Service) error {
	st, err := s.Query()
	if err != nil {
		return err
	}
	if st.State == svc.Stopped {
		return nil
	}
	if st.State != svc.StopPending {
		if st, err = s.Control(svc.Stop); err != nil {
			return err
		}
	}

	deadline := time.Now().Add(stopTimeout)
	for st.State != svc.Stopped {
		if time.Now().After(deadline) {
			return errStopTimeout
		}
		time.Sleep(stopPollInterval)
		if st, err = s.Query(); err != nil {
			return err
		}
	}
	return nil
}

// IsWindowsService reports whether the process was started by the SCM.
func IsWindowsService() (bool, error) {
	return svc.IsWindowsService()
}
