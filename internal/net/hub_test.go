package net_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"PerfectCircle/internal/net"
)

// eventually polls cond until it holds or the deadline passes.
func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestHubRelaysResults(t *testing.T) {
	Convey("Given a host hub and two joined players", t, func() {
		hostRoster := net.NewRoster()
		hub := net.NewHub(hostRoster)
		srv := httptest.NewServer(hub.Handler())
		defer srv.Close()
		addr := strings.TrimPrefix(srv.URL, "http://")

		adaRoster := net.NewRoster()
		ada, err := net.Join(addr, "ada", adaRoster)
		So(err, ShouldBeNil)
		defer ada.Close()

		graceRoster := net.NewRoster()
		grace, err := net.Join(addr, "grace", graceRoster)
		So(err, ShouldBeNil)
		defer grace.Close()

		Convey("A player's result reaches the host and the other player", func() {
			ada.Publish(result("r-ada-1", 91))

			So(eventually(func() bool { return hostRoster.Len() == 1 }), ShouldBeTrue)
			So(eventually(func() bool { return graceRoster.Len() == 1 }), ShouldBeTrue)

			standings := graceRoster.Standings()
			So(standings, ShouldHaveLength, 1)
			So(standings[0].Player, ShouldEqual, "ada")
			So(standings[0].Best, ShouldEqual, 91)
		})

		Convey("The host's own result reaches every player", func() {
			hub.Publish("host", result("r-host-1", 77))

			So(eventually(func() bool { return adaRoster.Len() == 1 }), ShouldBeTrue)
			So(eventually(func() bool { return graceRoster.Len() == 1 }), ShouldBeTrue)
		})

		Convey("A duplicated round is relayed once", func() {
			ada.Publish(result("r-dup", 85))
			ada.Publish(result("r-dup", 85)) // client-side dedupe drops it

			So(eventually(func() bool { return hostRoster.Len() == 1 }), ShouldBeTrue)
			time.Sleep(50 * time.Millisecond)
			So(hostRoster.Len(), ShouldEqual, 1)
			So(graceRoster.Len(), ShouldEqual, 1)
		})
	})
}
