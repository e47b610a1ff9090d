package scenarios_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/rigidlab/internal/loop"
	"github.com/san-kum/rigidlab/internal/physics"
	"github.com/san-kum/rigidlab/internal/render"
	"github.com/san-kum/rigidlab/internal/scenarios"
	"github.com/san-kum/rigidlab/internal/scene"
)

type heldKeys map[render.Key]bool

func (h heldKeys) IsKeyDown(k render.Key) bool { return h[k] }

type rectRecorder struct{ rects []render.Rect }

func (r *rectRecorder) DrawRect(rc render.Rect)     { r.rects = append(r.rects, rc) }
func (r *rectRecorder) DrawCircle(c render.Circle) {}

var _ = Describe("Registry", func() {
	It("lists every exercise in sorted order", func() {
		Expect(scenarios.Names()).To(Equal([]string{"bounce", "cannon", "falling", "incline", "obstacles", "slide"}))
	})

	It("keeps the window titles", func() {
		Expect(scenarios.Title("cannon")).To(Equal("Cannon Game"))
		Expect(scenarios.Title("incline")).To(Equal("Box2D Inclined Plane Simulation with Friction"))
		Expect(scenarios.Title("nope")).To(BeEmpty())
	})

	It("builds scenarios whose name matches the key", func() {
		for _, name := range scenarios.Names() {
			sc, err := scenarios.New(name, scenarios.DefaultParams())
			Expect(err).NotTo(HaveOccurred())
			Expect(sc.Name()).To(Equal(name))
		}
	})

	It("rejects unknown names", func() {
		_, err := scenarios.New("pinball", scenarios.DefaultParams())
		Expect(err).To(MatchError(scenarios.ErrUnknownScenario))
	})
})

var _ = Describe("Falling", func() {
	It("drops the box onto the ground and lets it rest there", func() {
		sc := scenarios.NewFalling(scenarios.DefaultParams())
		w := setup(sc)
		Expect(sc.Entities()).To(HaveLen(2))

		start := sc.Box().Body.Position()
		Expect(start[1]).To(BeNumerically("~", 300, 1e-9))

		stepN(w, sc, 30)
		Expect(sc.Box().Body.Position()[1]).To(BeNumerically(">", 300))

		stepN(w, sc, 300)
		// ground top is at 540 px, the box is 60 px tall
		Expect(sc.Box().Body.Position()[1]).To(BeNumerically("~", 510, 2))
	})
})

var _ = Describe("Bounce", func() {
	It("stores setup positions in meters", func() {
		sc := scenarios.NewBounce(scenarios.DefaultParams())
		setup(sc)

		Expect(sc.Entities()).To(HaveLen(5))
		p := sc.Ball().Body.WorldPosition()
		Expect(p[0]).To(BeNumerically("~", 400.0/30.0, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 300.0/30.0, 1e-9))
		Expect(sc.Ball().Body.Speed()).To(BeNumerically("~", 10, 1e-9))
	})

	It("keeps the ball inside the walls", func() {
		sc := scenarios.NewBounce(scenarios.DefaultParams())
		w := setup(sc)

		stepN(w, sc, 600)
		p := sc.Ball().Body.Position()
		Expect(p[0]).To(BeNumerically(">", 0))
		Expect(p[0]).To(BeNumerically("<", 800))
		Expect(p[1]).To(BeNumerically(">", 0))
		Expect(p[1]).To(BeNumerically("<", 600))
	})
})

var _ = Describe("Obstacles", func() {
	It("holds the ball speed at the target after every step", func() {
		sc := scenarios.NewObstacles(scenarios.DefaultParams())
		w := setup(sc)
		Expect(sc.Entities()).To(HaveLen(8))

		for i := 0; i < 600; i++ {
			stepN(w, sc, 1)
			Expect(sc.Ball().Body.Speed()).To(BeNumerically("~", 10, 1e-9))
		}
	})

	It("leaves a ball at rest untouched", func() {
		sc := scenarios.NewObstacles(scenarios.DefaultParams())
		setup(sc)

		sc.Ball().Body.SetVelocity(mgl64.Vec2{})
		sc.AfterStep()
		Expect(sc.Ball().Body.Speed()).To(BeZero())
	})

	It("honours a custom target speed", func() {
		sc := scenarios.NewObstacles(scenarios.Params{TargetSpeed: 4})
		w := setup(sc)

		stepN(w, sc, 10)
		Expect(sc.Ball().Body.Speed()).To(BeNumerically("~", 4, 1e-9))
	})
})

var _ = Describe("Slide", func() {
	var (
		sc *scenarios.Slide
		w  *physics.World
	)

	BeforeEach(func() {
		sc = scenarios.NewSlide(scenarios.DefaultParams())
		w = setup(sc)
		stepN(w, sc, 60)
	})

	push := func(keys heldKeys, frames int) {
		for i := 0; i < frames; i++ {
			sc.ApplyInput(keys)
			w.Step()
		}
	}

	It("rests without input", func() {
		push(heldKeys{}, 60)
		Expect(sc.Box().Body.Position()[0]).To(BeNumerically("~", 400, 1))
	})

	It("moves right while Right is held", func() {
		push(heldKeys{render.KeyRight: true}, 30)
		Expect(sc.Box().Body.Velocity()[0]).To(BeNumerically(">", 0))
		Expect(sc.Box().Body.Position()[0]).To(BeNumerically(">", 400))
	})

	It("moves left while Left is held", func() {
		push(heldKeys{render.KeyLeft: true}, 30)
		Expect(sc.Box().Body.Velocity()[0]).To(BeNumerically("<", 0))
	})

	It("cancels out when both keys are held", func() {
		push(heldKeys{render.KeyLeft: true, render.KeyRight: true}, 30)
		Expect(sc.Box().Body.Position()[0]).To(BeNumerically("~", 400, 1))
	})
})

var _ = Describe("Incline", func() {
	It("tilts the ground by the configured angle", func() {
		sc := scenarios.NewIncline(scenarios.Params{InclineAngle: 20})
		setup(sc)
		Expect(sc.Ground().Body.AngleDeg()).To(BeNumerically("~", -20, 1e-6))
	})

	It("defaults to fifteen degrees", func() {
		sc := scenarios.NewIncline(scenarios.Params{})
		Expect(sc.Angle).To(Equal(15.0))
	})

	It("slides the box down towards the low end", func() {
		sc := scenarios.NewIncline(scenarios.DefaultParams())
		w := setup(sc)

		stepN(w, sc, 120)
		Expect(sc.Box().Body.Position()[0]).To(BeNumerically("<", 395))
	})
})

var _ = Describe("Cannon", func() {
	DescribeTable("clamps the barrel angle",
		func(start, delta, expected float64) {
			sc := scenarios.NewCannon(scenarios.Params{CannonAngle: start})
			Expect(sc.AdjustAngle(delta)).To(Equal(expected))
			Expect(sc.AdjustAngle(delta)).To(BeNumerically("<=", scenarios.MaxCannonAngle))
			Expect(sc.Angle()).To(BeNumerically(">=", -scenarios.MaxCannonAngle))
		},
		Entry("up to the upper bound", 80.0, 5.0, 85.0),
		Entry("down to the lower bound", -80.0, -5.0, -85.0),
		Entry("inside the range", 45.0, -5.0, 40.0),
	)

	It("maps Up and Down to five degree steps", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		sc.HandleEvent(render.KeyPressed(render.KeyUp))
		Expect(sc.Angle()).To(Equal(40.0))
		sc.HandleEvent(render.KeyPressed(render.KeyDown))
		sc.HandleEvent(render.KeyPressed(render.KeyDown))
		Expect(sc.Angle()).To(Equal(50.0))
	})

	It("never passes the bounds however often it is adjusted", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		for i := 0; i < 100; i++ {
			sc.HandleEvent(render.KeyPressed(render.KeyDown))
		}
		Expect(sc.Angle()).To(Equal(85.0))
		for i := 0; i < 100; i++ {
			sc.HandleEvent(render.KeyPressed(render.KeyUp))
		}
		Expect(sc.Angle()).To(Equal(-85.0))
	})

	It("appends one projectile per shot, in order", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		w := setup(sc)
		Expect(sc.Projectiles()).To(BeEmpty())

		var fired []*scene.Entity
		for i := 0; i < 5; i++ {
			e, err := sc.Fire()
			Expect(err).NotTo(HaveOccurred())
			fired = append(fired, e)
			stepN(w, sc, 10)
		}

		Expect(sc.Projectiles()).To(Equal(fired))
		Expect(sc.Fired()).To(Equal(5))
		Expect(w.BodyCount()).To(Equal(5))

		stepN(w, sc, 300)
		Expect(sc.Projectiles()).To(HaveLen(5))
	})

	It("fires on Space", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		setup(sc)
		sc.HandleEvent(render.KeyPressed(render.KeySpace))
		sc.HandleEvent(render.KeyPressed(render.KeySpace))
		Expect(sc.Projectiles()).To(HaveLen(2))
	})

	It("fires horizontally at zero degrees with impulse over mass", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		setup(sc)
		sc.AdjustAngle(-45)
		Expect(sc.Angle()).To(Equal(0.0))

		e, err := sc.Fire()
		Expect(err).NotTo(HaveOccurred())

		mass := e.Body.Mass()
		Expect(mass).To(BeNumerically("~", math.Pi*0.25, 1e-6))
		v := e.Body.Velocity()
		Expect(v[0]).To(BeNumerically("~", 12/mass, 1e-6))
		Expect(v[1]).To(BeNumerically("~", 0, 1e-9))

		p := e.Body.Position()
		Expect(p[0]).To(BeNumerically("~", 50, 1e-9))
		Expect(p[1]).To(BeNumerically("~", 300, 1e-9))
	})

	It("draws the barrel rotated to the current angle", func() {
		sc := scenarios.NewCannon(scenarios.DefaultParams())
		var rec rectRecorder
		sc.DrawOverlay(&rec)

		Expect(rec.rects).To(HaveLen(1))
		Expect(rec.rects[0].RotationDeg).To(Equal(45.0))
		Expect(rec.rects[0].Position).To(Equal(mgl64.Vec2{30, 300}))
		Expect(rec.rects[0].Origin).To(Equal(mgl64.Vec2{0, 10}))
	})

	It("satisfies the driver hooks", func() {
		var sc loop.Scenario = scenarios.NewCannon(scenarios.DefaultParams())
		_, ok := sc.(loop.EventHandler)
		Expect(ok).To(BeTrue())
		_, ok = sc.(loop.Overlay)
		Expect(ok).To(BeTrue())
	})
})
