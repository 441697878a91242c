package usecase

import "github.com/trangvu/shopmart/internal/domain/model"

// PriceBreakdown is the itemized result of pricing a checkout.
type PriceBreakdown struct {
	Subtotal         float64
	ProductDiscount  float64
	MethodFee        float64
	DistanceFee      float64
	ShippingDiscount float64
}

// ShippingTotal returns the shipping charge after discount.
func (b PriceBreakdown) ShippingTotal() float64 {
	return b.MethodFee + b.DistanceFee - b.ShippingDiscount
}

// TotalDiscount returns the combined product and shipping discount.
func (b PriceBreakdown) TotalDiscount() float64 {
	return b.ProductDiscount + b.ShippingDiscount
}

// GrandTotal returns the amount the customer pays.
func (b PriceBreakdown) GrandTotal() float64 {
	return (b.Subtotal - b.ProductDiscount) + b.ShippingTotal()
}

// ComputeQuote prices a checkout from the selected-lines subtotal, the chosen
// shipping method fee and the distance fee. A nil voucher yields zero
// discounts. A SHIPPING voucher never reduces shipping below zero; a PRODUCT
// voucher applies to the product part only.
func ComputeQuote(subtotal, methodFee, distanceFee float64, voucher *model.Voucher) PriceBreakdown {
	b := PriceBreakdown{
		Subtotal:    subtotal,
		MethodFee:   methodFee,
		DistanceFee: distanceFee,
	}

	if voucher == nil {
		return b
	}

	switch voucher.Target {
	case model.TargetShipping:
		shipping := methodFee + distanceFee
		discount := voucher.DiscountOn(shipping)
		if discount > shipping {
			discount = shipping
		}
		if discount < 0 {
			discount = 0
		}
		b.ShippingDiscount = discount
	default:
		b.ProductDiscount = voucher.DiscountOn(subtotal)
	}

	return b
}
