package affiliate_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/dirtlot-lab/dirtlot/pkg/domain/model"
	"github.com/dirtlot-lab/dirtlot/pkg/service/affiliate"
)

func TestBuild(t *testing.T) {
	builder := affiliate.NewBuilder("")

	t.Run("complete listing", func(t *testing.T) {
		links := builder.Build(&model.Car{Make: "Toyota", Model: "Corolla", Year: 1998})

		gt.Value(t, links.Ebay).Equal("https://www.ebay.com/sch/i.html?_nkw=1998+Toyota+Corolla+parts")
		gt.Value(t, links.Amazon).Equal("https://www.amazon.com/s?k=1998+Toyota+Corolla+parts&tag=dirtlot-20")
	})

	t.Run("make with spaces is escaped", func(t *testing.T) {
		links := builder.Build(&model.Car{Make: "Land Rover", Model: "Defender", Year: 1994})

		gt.Value(t, links.Ebay).Equal("https://www.ebay.com/sch/i.html?_nkw=1994+Land+Rover+Defender+parts")
	})

	t.Run("nil car yields placeholders", func(t *testing.T) {
		links := builder.Build(nil)

		gt.Value(t, links.Ebay).Equal(affiliate.PlaceholderLink)
		gt.Value(t, links.Amazon).Equal(affiliate.PlaceholderLink)
	})

	t.Run("missing year yields placeholders", func(t *testing.T) {
		links := builder.Build(&model.Car{Make: "Toyota", Model: "Corolla"})

		gt.Value(t, links.Ebay).Equal(affiliate.PlaceholderLink)
		gt.Value(t, links.Amazon).Equal(affiliate.PlaceholderLink)
	})

	t.Run("custom amazon tag", func(t *testing.T) {
		custom := affiliate.NewBuilder("rustbucket-07")
		links := custom.Build(&model.Car{Make: "Dodge", Model: "Neon", Year: 2001})

		gt.Value(t, links.Amazon).Equal("https://www.amazon.com/s?k=2001+Dodge+Neon+parts&tag=rustbucket-07")
	})
}
