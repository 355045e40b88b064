package interact_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/crossplot/internal/interact"
	"github.com/san-kum/crossplot/internal/viewport"
)

var _ = Describe("Controller", func() {
	var (
		engine *viewport.Engine
		ctrl   *interact.Controller
		start  viewport.Viewport
	)

	BeforeEach(func() {
		start = viewport.Viewport{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
		engine = viewport.NewEngine(start)
		ctrl = interact.New(engine, interact.Options{})
	})

	It("starts idle", func() {
		Expect(ctrl.State()).To(Equal(interact.Idle))
		_, ok := ctrl.Anchor()
		Expect(ok).To(BeFalse())
	})

	Describe("dragging", func() {
		It("captures an anchor on press", func() {
			ctrl.PointerDown(40, 30)

			Expect(ctrl.State()).To(Equal(interact.Dragging))
			anchor, ok := ctrl.Anchor()
			Expect(ok).To(BeTrue())
			Expect(anchor).To(Equal(interact.DragAnchor{X: 40, Y: 30, Base: start}))
		})

		It("pans relative to the press point", func() {
			ctrl.PointerDown(50, 50)
			v := ctrl.PointerMove(60, 40, 100, 100)

			Expect(v.XMin).To(BeNumerically("~", -1, 1e-9))
			Expect(v.XMax).To(BeNumerically("~", 9, 1e-9))
			Expect(v.YMin).To(BeNumerically("~", -1, 1e-9))
			Expect(v.YMax).To(BeNumerically("~", 9, 1e-9))
			Expect(engine.Current()).To(Equal(v))
		})

		It("measures every move from the original anchor", func() {
			ctrl.PointerDown(10, 10)
			ctrl.PointerMove(13, 11, 200, 100)
			ctrl.PointerMove(17, 5, 200, 100)
			third := ctrl.PointerMove(25, 30, 200, 100)

			want := viewport.NewEngine(start).PanByPixels(15, 20, 200, 100, start)
			Expect(third).To(Equal(want))
		})

		It("keeps the first anchor on a second press", func() {
			ctrl.PointerDown(1, 1)
			ctrl.PointerMove(5, 5, 100, 100)
			ctrl.PointerDown(5, 5)

			anchor, _ := ctrl.Anchor()
			Expect(anchor.X).To(Equal(1.0))
			Expect(anchor.Base).To(Equal(start))
		})

		It("ignores moves while idle", func() {
			Expect(ctrl.PointerMove(90, 90, 100, 100)).To(Equal(start))
		})

		DescribeTable("ends on release",
			func(release func(*interact.Controller)) {
				ctrl.PointerDown(0, 0)
				release(ctrl)

				Expect(ctrl.State()).To(Equal(interact.Idle))
				_, ok := ctrl.Anchor()
				Expect(ok).To(BeFalse())
			},
			Entry("pointer up", (*interact.Controller).PointerUp),
			Entry("pointer leave", (*interact.Controller).PointerLeave),
		)
	})

	Describe("wheel", func() {
		It("zooms in on wheel up at the pointer fraction", func() {
			v := ctrl.Wheel(100, 50, 100, 100, -1)

			want := viewport.NewEngine(start).ZoomAt(1, 0.5, interact.DefaultZoomIn)
			Expect(v).To(Equal(want))
		})

		It("zooms out on wheel down", func() {
			v := ctrl.Wheel(100, 100, 100, 100, 3)
			Expect(v.XMax).To(BeNumerically("~", 10*interact.DefaultZoomOut, 1e-9))
			Expect(v.YMax).To(BeNumerically("~", 10*interact.DefaultZoomOut, 1e-9))
		})

		It("ignores a zero delta and an empty area", func() {
			Expect(ctrl.Wheel(10, 10, 100, 100, 0)).To(Equal(start))
			Expect(ctrl.Wheel(10, 10, 0, 100, -1)).To(Equal(start))
		})

		It("does not change the drag state", func() {
			ctrl.PointerDown(0, 0)
			ctrl.Wheel(50, 50, 100, 100, -1)
			Expect(ctrl.State()).To(Equal(interact.Dragging))
		})
	})

	Describe("points", func() {
		points := []viewport.XY{{X: 0, Y: 0}, {X: 10, Y: 10}}

		It("fits and resets the drag when points change", func() {
			ctrl.PointerDown(3, 3)
			v := ctrl.SetPoints(points)

			Expect(ctrl.State()).To(Equal(interact.Idle))
			Expect(v.XMin).To(BeNumerically("~", -0.5, 1e-9))
			Expect(v.XMax).To(BeNumerically("~", 10.5, 1e-9))
		})

		It("refits on double click without leaving the drag", func() {
			fitted := ctrl.SetPoints(points)
			ctrl.Wheel(50, 50, 100, 100, -1)
			ctrl.PointerDown(0, 0)

			Expect(ctrl.DoubleClick()).To(Equal(fitted))
			Expect(ctrl.State()).To(Equal(interact.Dragging))
		})

		It("leaves the view alone on double click with no points", func() {
			Expect(ctrl.DoubleClick()).To(Equal(start))
		})
	})
})
