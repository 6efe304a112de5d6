package scoring_test

import (
	"math/rand"
	"testing"

	"github.com/healtrack/healtrack/internal/domain/scoring"
	"github.com/healtrack/healtrack/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore(t *testing.T) {
	Convey("Given vitals with no severity band matched", t, func() {
		res := scoring.Score(120, 70, 100, 25)

		Convey("Then the score is zero and the risk is Low at the base probability", func() {
			So(res.Score, ShouldEqual, 0)
			So(res.Label, ShouldEqual, types.RiskLow)
			So(res.Probability, ShouldEqual, 0.15)
		})
	})

	Convey("Given vitals at the maximum band on every vital", t, func() {
		res := scoring.Score(185, 125, 260, 36)

		Convey("Then the score is 10.5 and the probability hits the High cap", func() {
			So(res.Score, ShouldEqual, 10.5)
			So(res.Label, ShouldEqual, types.RiskHigh)
			So(res.Probability, ShouldEqual, 0.95)
		})
	})

	Convey("Given low-side vitals", t, func() {
		Convey("When systolic pressure is at or below 90", func() {
			res := scoring.Score(80, 70, 100, 25)
			So(res.Score, ShouldEqual, 0.5)
			So(res.Label, ShouldEqual, types.RiskLow)
			So(res.Probability, ShouldEqual, 0.2)
		})

		Convey("When heart rate is at or below 50", func() {
			res := scoring.Score(120, 50, 100, 25)
			So(res.Score, ShouldEqual, 1)
			So(res.Label, ShouldEqual, types.RiskLow)
			So(res.Probability, ShouldAlmostEqual, 0.25, 1e-12)
		})

		Convey("When BMI is at or below 18.5", func() {
			res := scoring.Score(120, 70, 100, 18.5)
			So(res.Score, ShouldEqual, 1)
			So(res.Label, ShouldEqual, types.RiskLow)
		})
	})

	Convey("Given only the highest matching band may contribute per vital", t, func() {
		Convey("When systolic pressure is 185, only the 180 band counts", func() {
			res := scoring.Score(185, 70, 100, 25)
			So(res.Score, ShouldEqual, 3)
		})

		Convey("When glucose is 200, only the 180 band counts", func() {
			res := scoring.Score(120, 70, 200, 25)
			So(res.Score, ShouldEqual, 2)
		})
	})

	Convey("Given scores around the Low/Medium boundary", t, func() {
		Convey("When the score is exactly 2.0 it is still Low at 0.35", func() {
			res := scoring.Score(140, 70, 100, 25) // bp band only: 2.0
			So(res.Score, ShouldEqual, 2)
			So(res.Label, ShouldEqual, types.RiskLow)
			So(res.Probability, ShouldAlmostEqual, 0.35, 1e-12)
		})

		Convey("When the score steps past 2.0 the probability jumps to the Medium base", func() {
			res := scoring.Score(140, 50, 100, 25) // 2.0 + 1.0
			So(res.Score, ShouldEqual, 3)
			So(res.Label, ShouldEqual, types.RiskMedium)
			So(res.Probability, ShouldAlmostEqual, 0.55, 1e-12)
		})

		Convey("When the score is 2.5 the Medium formula starts near 0.45", func() {
			res := scoring.Score(160, 70, 100, 25)
			So(res.Score, ShouldEqual, 2.5)
			So(res.Label, ShouldEqual, types.RiskMedium)
			So(res.Probability, ShouldAlmostEqual, 0.5, 1e-12)
		})
	})

	Convey("Given scores around the Medium/High boundary", t, func() {
		Convey("When the score is exactly 4.0 it is still Medium", func() {
			res := scoring.Score(140, 120, 100, 25) // 2.0 + 2.0
			So(res.Score, ShouldEqual, 4)
			So(res.Label, ShouldEqual, types.RiskMedium)
			So(res.Probability, ShouldAlmostEqual, 0.65, 1e-12)
		})

		Convey("When the score passes 4.0 the High formula takes over at 0.70", func() {
			res := scoring.Score(160, 120, 100, 25) // 2.5 + 2.0
			So(res.Score, ShouldEqual, 4.5)
			So(res.Label, ShouldEqual, types.RiskHigh)
			So(res.Probability, ShouldAlmostEqual, 0.725, 1e-12)
		})
	})

	Convey("Given randomized finite inputs including extreme and negative values", t, func() {
		rng := rand.New(rand.NewSource(42))

		Convey("Then the probability is always within [0.01, 0.99]", func() {
			for i := 0; i < 2000; i++ {
				bp := rng.Float64()*2000 - 500
				hr := rng.Float64()*1000 - 200
				sugar := rng.Float64()*2000 - 500
				bmi := rng.Float64()*300 - 50
				res := scoring.Score(bp, hr, sugar, bmi)
				So(res.Probability, ShouldBeGreaterThanOrEqualTo, 0.01)
				So(res.Probability, ShouldBeLessThanOrEqualTo, 0.99)
			}
		})
	})
}

func TestClamp(t *testing.T) {
	Convey("Given raw probabilities outside the reporting bounds", t, func() {
		So(scoring.Clamp(0), ShouldEqual, 0.01)
		So(scoring.Clamp(1), ShouldEqual, 0.99)
		So(scoring.Clamp(-5), ShouldEqual, 0.01)
		So(scoring.Clamp(0.5), ShouldEqual, 0.5)
	})
}
