package kube

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/llm-d-incubation/resource-quantities/pkg/quantity"
)

var _ = Describe("Quantity conversions", func() {
	Context("CPU", func() {
		It("should convert whole-core quantities to millicores", func() {
			c, err := CPUFromQuantity(resource.MustParse("2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Millicores()).To(Equal(int64(2000)))
		})

		It("should convert milli quantities exactly", func() {
			c, err := CPUFromQuantity(resource.MustParse("250m"))
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Millicores()).To(Equal(int64(250)))
		})

		It("should reject negative quantities", func() {
			_, err := CPUFromQuantity(resource.MustParse("-1"))
			Expect(err).To(MatchError(quantity.ErrNegative))
		})

		It("should round trip through resource.Quantity", func() {
			orig := quantity.MustParseCPU("1.1")
			back, err := CPUFromQuantity(*CPUToQuantity(orig))
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Equal(orig)).To(BeTrue())
		})
	})

	Context("Memory", func() {
		It("should convert binary SI quantities to bytes", func() {
			m, err := MemoryFromQuantity(resource.MustParse("128Mi"))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Bytes()).To(Equal(int64(128 * 1024 * 1024)))
		})

		It("should reject negative quantities", func() {
			_, err := MemoryFromQuantity(resource.MustParse("-1Gi"))
			Expect(err).To(MatchError(quantity.ErrNegative))
		})

		It("should round trip through resource.Quantity", func() {
			orig := quantity.MustParseMemory("1.125Gi")
			back, err := MemoryFromQuantity(*MemoryToQuantity(orig))
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Equal(orig)).To(BeTrue())
		})
	})
})

var _ = Describe("ResourceList conversions", func() {
	It("should extract cpu and memory", func() {
		rl := corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("500m"),
			corev1.ResourceMemory: resource.MustParse("1Gi"),
		}
		res, err := FromResourceList(rl)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.CPU.String()).To(Equal("500m"))
		Expect(res.Memory.String()).To(Equal("1Gi"))
	})

	It("should default missing entries to zero", func() {
		res, err := FromResourceList(corev1.ResourceList{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.CPU.Equal(quantity.ZeroCPU())).To(BeTrue())
		Expect(res.Memory.Equal(quantity.ZeroMemory())).To(BeTrue())
	})

	It("should ignore resource names other than cpu and memory", func() {
		rl := corev1.ResourceList{
			corev1.ResourceCPU:              resource.MustParse("1"),
			corev1.ResourceEphemeralStorage: resource.MustParse("10Gi"),
		}
		res, err := FromResourceList(rl)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.CPU.Millicores()).To(Equal(int64(1000)))
	})

	It("should surface negative entries as errors", func() {
		rl := corev1.ResourceList{
			corev1.ResourceMemory: resource.MustParse("-1Gi"),
		}
		_, err := FromResourceList(rl)
		Expect(err).To(MatchError(quantity.ErrNegative))
	})

	It("should round trip through a ResourceList", func() {
		orig := Resources{
			CPU:    quantity.MustParseCPU("750m"),
			Memory: quantity.MustParseMemory("256Mi"),
		}
		back, err := FromResourceList(orig.ToResourceList())
		Expect(err).NotTo(HaveOccurred())
		Expect(back.CPU.Equal(orig.CPU)).To(BeTrue())
		Expect(back.Memory.Equal(orig.Memory)).To(BeTrue())
	})
})

var _ = Describe("Resources arithmetic", func() {
	var request, capacity Resources

	BeforeEach(func() {
		request = Resources{
			CPU:    quantity.MustParseCPU("500m"),
			Memory: quantity.MustParseMemory("512Mi"),
		}
		capacity = Resources{
			CPU:    quantity.MustParseCPU("2"),
			Memory: quantity.MustParseMemory("4Gi"),
		}
	})

	It("should report a fitting request", func() {
		Expect(request.Fits(capacity)).To(BeTrue())
	})

	It("should report an equal request as fitting", func() {
		Expect(capacity.Fits(capacity)).To(BeTrue())
	})

	It("should reject a request exceeding one axis", func() {
		request.Memory = quantity.MustParseMemory("8Gi")
		Expect(request.Fits(capacity)).To(BeFalse())
	})

	It("should total requests componentwise", func() {
		sum, err := request.Add(request)
		Expect(err).NotTo(HaveOccurred())
		Expect(sum.CPU.String()).To(Equal("1"))
		Expect(sum.Memory.String()).To(Equal("1Gi"))
	})

	It("should compute headroom componentwise", func() {
		free, err := capacity.Sub(request)
		Expect(err).NotTo(HaveOccurred())
		Expect(free.CPU.String()).To(Equal("1.5"))
		Expect(free.Memory.String()).To(Equal("3.5Gi"))
	})

	It("should fail headroom when the request exceeds capacity", func() {
		_, err := request.Sub(capacity)
		Expect(err).To(MatchError(quantity.ErrNegative))
	})
})
