package mc_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quantsim/internal/curve"
	"github.com/san-kum/quantsim/internal/discretize"
	"github.com/san-kum/quantsim/internal/mc"
	"github.com/san-kum/quantsim/internal/process"
	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/quote"
)

func newHeston() *process.Heston {
	ref := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	riskFree := curve.NewHandle(curve.NewFlatForward(ref, 0.03, curve.Actual365Fixed))
	dividend := curve.NewHandle(curve.NewFlatForward(ref, 0.0, curve.Actual365Fixed))
	spot := quote.NewHandle(quote.NewSimpleQuote(100.0))
	return process.NewHeston(riskFree, dividend, spot, 0.04, 1.0, 0.04, 0.2, -0.5)
}

func baseConfig() quant.Config {
	cfg := quant.DefaultConfig()
	cfg.Dt = 1.0 / 52.0
	cfg.Horizon = 1.0
	cfg.Seed = 42
	return cfg
}

var _ = Describe("Generator", func() {
	var (
		h   *process.Heston
		gen *mc.Generator
	)

	BeforeEach(func() {
		h = newHeston()
		gen = mc.NewGenerator(h, discretize.NewEuler())
	})

	AfterEach(func() {
		h.Close()
	})

	It("walks the full grid including the initial point", func() {
		res, err := gen.Run(context.Background(), baseConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StepsTaken).To(Equal(52))
		Expect(res.Path.States).To(HaveLen(53))
		Expect(res.Path.Times[0]).To(Equal(0.0))
		Expect(res.Path.Times[52]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("keeps the price strictly positive along the path", func() {
		res, err := gen.Run(context.Background(), baseConfig())
		Expect(err).NotTo(HaveOccurred())
		for _, x := range res.Path.States {
			Expect(x[0]).To(BeNumerically(">", 0))
		}
	})

	It("reproduces the path for the same seed", func() {
		res1, err := gen.Run(context.Background(), baseConfig())
		Expect(err).NotTo(HaveOccurred())
		res2, err := gen.Run(context.Background(), baseConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res2.Terminal).To(Equal(res1.Terminal))
	})

	It("produces different paths for different seeds", func() {
		cfg := baseConfig()
		res1, err := gen.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		cfg.Seed = 43
		res2, err := gen.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res2.Terminal[0]).NotTo(Equal(res1.Terminal[0]))
	})

	It("skips path recording when disabled", func() {
		cfg := baseConfig()
		cfg.RecordPath = false
		res, err := gen.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Path).To(BeNil())
		Expect(res.Terminal).To(HaveLen(2))
	})

	It("rejects a non-positive time step", func() {
		cfg := baseConfig()
		cfg.Dt = 0
		_, err := gen.Run(context.Background(), cfg)
		Expect(err).To(HaveOccurred())
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := gen.Run(ctx, baseConfig())
		Expect(err).To(MatchError(context.Canceled))
	})

	It("surfaces an unset input as a failed run", func() {
		h.S0().Link(nil)
		_, err := gen.Run(context.Background(), baseConfig())
		Expect(err).To(MatchError(quant.ErrEmptyHandle))
	})
})

var _ = Describe("Ensemble", func() {
	It("runs the requested number of paths", func() {
		h := newHeston()
		defer h.Close()

		ens := mc.NewEnsemble(h, discretize.NewEuler(), 16, 1)
		cfg := baseConfig()
		cfg.RecordPath = false

		results, err := ens.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(16))
		for _, res := range results {
			Expect(res.Terminal[0]).To(BeNumerically(">", 0))
		}
	})

	It("gives each path its own seed", func() {
		h := newHeston()
		defer h.Close()

		ens := mc.NewEnsemble(h, discretize.NewEuler(), 4, 7)
		cfg := baseConfig()
		cfg.RecordPath = false

		results, err := ens.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		terminals := map[float64]bool{}
		for _, res := range results {
			terminals[res.Terminal[0]] = true
		}
		Expect(len(terminals)).To(Equal(4))
	})
})

var _ = Describe("Stepper", func() {
	It("advances to the horizon and then stops", func() {
		h := newHeston()
		defer h.Close()

		cfg := baseConfig()
		s, err := mc.NewStepper(h, discretize.NewEuler(), cfg)
		Expect(err).NotTo(HaveOccurred())

		for !s.Done() {
			Expect(s.Next()).To(Succeed())
		}
		Expect(s.Time()).To(BeNumerically("~", 1.0, 1e-12))

		// Extra Next calls are no-ops at the end of the grid.
		end := s.State().Clone()
		Expect(s.Next()).To(Succeed())
		Expect(s.State()).To(Equal(end))
	})

	It("replays the same path after Reset", func() {
		h := newHeston()
		defer h.Close()

		s, err := mc.NewStepper(h, discretize.NewEuler(), baseConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Next()).To(Succeed())
		first := s.State().Clone()

		Expect(s.Reset()).To(Succeed())
		Expect(s.Next()).To(Succeed())
		Expect(s.State()).To(Equal(first))
	})
})
