package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

const chatRecommendLimit = 3

// ChatUseCase is a keyword-driven shopping assistant. Every message is
// classified into product, guide or fallback intent by keyword lookup; there
// is no conversation state.
type ChatUseCase struct {
	products repository.ProductRepository
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(products repository.ProductRepository) *ChatUseCase {
	return &ChatUseCase{products: products}
}

var (
	productIntentKeywords = []string{"recommend", "suggest", "buy", "cheap", "price", "product"}
	guideIntentKeywords   = []string{"how", "where", "add", "cart", "checkout", "order", "wishlist"}

	categoryKeywords = []struct {
		category string
		keywords []string
	}{
		{"Electronics", []string{"electronics", "electronic", "device", "gadget"}},
		{"Fashion", []string{"fashion", "cloth", "clothing", "wear"}},
		{"Home", []string{"home", "house", "furniture", "living"}},
		{"Beauty", []string{"beauty", "makeup", "cosmetic", "skincare"}},
		{"Sports", []string{"sports", "sport", "fitness", "gym", "exercise"}},
	}

	cheapKeywords     = []string{"cheap", "low price", "affordable"}
	expensiveKeywords = []string{"expensive", "premium", "luxury", "high end"}
	ratingKeywords    = []string{"best", "top rated", "rating", "stars"}
	popularKeywords   = []string{"popular", "trending", "hot", "bestseller"}
)

// Reply answers a chat message. loggedIn switches the guide replies between
// onboarding and feature help.
func (u *ChatUseCase) Reply(ctx context.Context, message string, loggedIn bool) (string, error) {
	text := normalizeChat(message)

	switch {
	case containsAny(text, productIntentKeywords):
		return u.recommend(ctx, text)
	case containsAny(text, guideIntentKeywords):
		return guide(text, loggedIn), nil
	default:
		return "I can help recommend products or guide you on how to use the app", nil
	}
}

func (u *ChatUseCase) recommend(ctx context.Context, text string) (string, error) {
	products, err := u.pickProducts(ctx, text)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "Sorry, I couldn't find suitable products.", nil
	}

	var sb strings.Builder
	sb.WriteString("Here are some products you might like:\n\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "• %s - $%.2f\n", p.Name, p.Price)
	}
	return sb.String(), nil
}

func (u *ChatUseCase) pickProducts(ctx context.Context, text string) ([]model.Product, error) {
	for _, c := range categoryKeywords {
		if containsAny(text, c.keywords) {
			return u.products.List(ctx, model.ProductFilter{
				Category: c.category,
				SortBy:   model.SortByNewest,
				SortDesc: true,
				Limit:    chatRecommendLimit,
			})
		}
	}

	switch {
	case containsAny(text, cheapKeywords):
		return u.products.List(ctx, model.ProductFilter{
			SortBy: model.SortByPrice,
			Limit:  chatRecommendLimit,
		})
	case containsAny(text, expensiveKeywords):
		return u.products.List(ctx, model.ProductFilter{
			SortBy:   model.SortByPrice,
			SortDesc: true,
			Limit:    chatRecommendLimit,
		})
	case containsAny(text, ratingKeywords):
		rated, err := u.products.SearchWithRating(ctx, "", chatRecommendLimit, 0)
		if err != nil {
			return nil, err
		}
		products := make([]model.Product, 0, len(rated))
		for _, r := range rated {
			products = append(products, r.Product)
		}
		return products, nil
	case containsAny(text, popularKeywords):
		return u.products.List(ctx, model.ProductFilter{
			SortBy:   model.SortByStock,
			SortDesc: true,
			Limit:    chatRecommendLimit,
		})
	}

	return u.products.List(ctx, model.ProductFilter{
		SortBy:   model.SortByNewest,
		SortDesc: true,
		Limit:    chatRecommendLimit,
	})
}

func guide(text string, loggedIn bool) string {
	if !loggedIn {
		switch {
		case strings.Contains(text, "login") || strings.Contains(text, "sign in"):
			return "Go to Profile → Login to access orders, cart, and checkout."
		case strings.Contains(text, "signup") || strings.Contains(text, "register"):
			return "Go to Profile → Sign up to create a new account."
		case strings.Contains(text, "cart") || strings.Contains(text, "checkout") || strings.Contains(text, "order"):
			return "You need to log in first. Go to Profile → Login."
		default:
			return "You can browse products freely. Log in to add to cart, checkout, or view orders."
		}
	}

	switch {
	case strings.Contains(text, "add") && strings.Contains(text, "cart"):
		return "Open a product → tap 'Add to Cart' → go to Cart."
	case strings.Contains(text, "checkout"):
		return "Go to Cart → press Checkout → select address and payment."
	case strings.Contains(text, "order"):
		return "Go to Profile → Orders to view your order status."
	case strings.Contains(text, "wishlist"):
		return "Tap the heart icon on a product to save it to your wishlist."
	case strings.Contains(text, "voucher"):
		return "Go to Profile → Vouchers to view available discounts."
	case strings.Contains(text, "payment") || strings.Contains(text, "card"):
		return "Go to Profile → Payment to manage your cards."
	case strings.Contains(text, "address"):
		return "Go to Profile → Address to manage shipping addresses."
	case strings.Contains(text, "profile"):
		return "Go to Profile to manage your account, orders, and settings."
	default:
		return "You can ask me about products, cart, checkout, orders, wishlist, or vouchers."
	}
}

// normalizeChat lowercases and flattens simple plurals so keyword lookups
// match "accessories" and "gadgets" alike.
func normalizeChat(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "ies", "y")
	text = strings.ReplaceAll(text, "s ", " ")
	return strings.TrimSpace(text)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
