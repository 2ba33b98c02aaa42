package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/godbus/dbus/v5"

	"appbar/internal/ports"
)

const (
	portalBusName    = "org.freedesktop.portal.Desktop"
	portalObjectPath = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalOpenFile   = "org.freedesktop.portal.OpenURI.OpenFile"
)

// PortalOpener asks the freedesktop desktop portal on the session bus to
// open a local file or directory with its default handler.
type PortalOpener struct {
	connect func() (*dbus.Conn, error)
}

func NewPortalOpener() PortalOpener {
	return PortalOpener{connect: connectSessionBus}
}

func connectSessionBus() (*dbus.Conn, error) {
	return dbus.ConnectSessionBus()
}

func (o PortalOpener) Open(ctx context.Context, location string) error {
	if strings.TrimSpace(location) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("location is empty")
	}
	connect := o.connect
	if connect == nil {
		connect = connectSessionBus
	}
	conn, err := connect()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("session bus unavailable").
			WithCause(err)
	}
	defer conn.Close()

	file, err := os.Open(location)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open location").
			WithCause(err)
	}
	defer file.Close()

	options := map[string]dbus.Variant{
		"ask": dbus.MakeVariant(false),
	}
	call := conn.Object(portalBusName, portalObjectPath).
		CallWithContext(ctx, portalOpenFile, 0, "", dbus.UnixFD(file.Fd()), options)
	if call.Err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("desktop portal rejected open request").
			WithCause(call.Err)
	}
	return nil
}

var _ ports.OpenerPort = PortalOpener{}
