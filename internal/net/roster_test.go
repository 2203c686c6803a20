package net_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"PerfectCircle/internal/circle"
	"PerfectCircle/internal/net"
	"PerfectCircle/internal/session"
)

func result(id string, score int) session.Result {
	return session.Result{
		RoundID: id,
		Score:   score,
		Circle:  circle.Circle{X: 400, Y: 400, Radius: 200},
		Samples: 60,
		When:    time.Now(),
	}
}

func TestRoster(t *testing.T) {
	Convey("Given an empty roster", t, func() {
		roster := net.NewRoster()

		var changes int
		roster.OnChange(func() { changes++ })

		Convey("A new result is merged and fires the change hook", func() {
			So(roster.Add("ada", result("r1", 92)), ShouldBeTrue)
			So(roster.Len(), ShouldEqual, 1)
			So(changes, ShouldEqual, 1)
		})

		Convey("The same round relayed twice is counted once", func() {
			So(roster.Add("ada", result("r1", 92)), ShouldBeTrue)
			So(roster.Add("ada", result("r1", 92)), ShouldBeFalse)
			So(roster.Len(), ShouldEqual, 1)
			So(changes, ShouldEqual, 1)
		})

		Convey("Rejected strokes never make the board", func() {
			So(roster.Add("ada", result("r2", circle.NotACircle)), ShouldBeFalse)
			So(roster.Len(), ShouldEqual, 0)
		})

		Convey("Results without a round ID are dropped", func() {
			So(roster.Add("ada", result("", 80)), ShouldBeFalse)
		})

		Convey("Standings rank players by best score", func() {
			roster.Add("ada", result("a1", 70))
			roster.Add("ada", result("a2", 95))
			roster.Add("grace", result("g1", 88))
			roster.Add("alan", result("l1", 88))

			standings := roster.Standings()
			So(standings, ShouldHaveLength, 3)
			So(standings[0].Player, ShouldEqual, "ada")
			So(standings[0].Best, ShouldEqual, 95)
			So(standings[0].Rounds, ShouldEqual, 2)
			// Ties break alphabetically for a stable board.
			So(standings[1].Player, ShouldEqual, "alan")
			So(standings[2].Player, ShouldEqual, "grace")
		})
	})
}
