package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// Store is an in-memory repository.Factory with the same semantics as the
// PostgreSQL layer: order placement snapshots prices, decrements stock,
// clears consumed cart lines and burns voucher usage; cancellation restores
// stock. It backs use case tests without a database.
type Store struct {
	mu sync.Mutex

	users         map[int64]*model.User
	products      map[int64]*model.Product
	carts         map[int64]*model.Cart
	cartLines     map[int64]*model.CartLine
	vouchers      map[int64]*model.Voucher
	orders        map[int64]*model.Order
	orderLines    map[int64][]model.OrderLine
	orderVouchers map[int64]int64
	reviews       map[int64]*model.Review
	wishlist      map[[2]int64]time.Time
	notifications map[int64]*model.Notification
	claims        map[int64]time.Time
	addresses     map[int64]*model.Address
	cards         map[int64]*model.PaymentCard

	nextID int64
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*model.User),
		products:      make(map[int64]*model.Product),
		carts:         make(map[int64]*model.Cart),
		cartLines:     make(map[int64]*model.CartLine),
		vouchers:      make(map[int64]*model.Voucher),
		orders:        make(map[int64]*model.Order),
		orderLines:    make(map[int64][]model.OrderLine),
		orderVouchers: make(map[int64]int64),
		reviews:       make(map[int64]*model.Review),
		wishlist:      make(map[[2]int64]time.Time),
		notifications: make(map[int64]*model.Notification),
		claims:        make(map[int64]time.Time),
		addresses:     make(map[int64]*model.Address),
		cards:         make(map[int64]*model.PaymentCard),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Users() repository.UserRepository                 { return (*userRepo)(s) }
func (s *Store) Products() repository.ProductRepository           { return (*productRepo)(s) }
func (s *Store) Carts() repository.CartRepository                 { return (*cartRepo)(s) }
func (s *Store) Vouchers() repository.VoucherRepository           { return (*voucherRepo)(s) }
func (s *Store) Orders() repository.OrderRepository               { return (*orderRepo)(s) }
func (s *Store) Reviews() repository.ReviewRepository             { return (*reviewRepo)(s) }
func (s *Store) Wishlists() repository.WishlistRepository         { return (*wishlistRepo)(s) }
func (s *Store) Notifications() repository.NotificationRepository { return (*notificationRepo)(s) }
func (s *Store) Addresses() repository.AddressRepository          { return (*addressRepo)(s) }
func (s *Store) Cards() repository.CardRepository                 { return (*cardRepo)(s) }

var _ repository.Factory = (*Store)(nil)

// SeedProduct inserts a product directly, returning its copy.
func (s *Store) SeedProduct(name string, price float64, stock int, category string) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &model.Product{
		ID:        s.id(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		Category:  category,
		CreatedAt: time.Now(),
	}
	s.products[p.ID] = p
	return *p
}

// SeedVoucher inserts a voucher directly, returning its copy.
func (s *Store) SeedVoucher(v model.Voucher) model.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.id()
	stored := v
	s.vouchers[v.ID] = &stored
	return v
}

// ProductStock reads the current stock of a product.
func (s *Store) ProductStock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		return p.Stock
	}
	return -1
}

// VoucherUsage reads the current usage count of a voucher.
func (s *Store) VoucherUsage(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.vouchers[id]; ok {
		return v.UsageCount
	}
	return -1
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, email, fullName, passwordHash string) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	u := &model.User{ID: s.id(), Email: email, FullName: fullName, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.users[u.ID] = u
	out := *u
	return &out, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

type productRepo Store

func (r *productRepo) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *product
	p.ID = s.id()
	p.CreatedAt = time.Now()
	s.products[p.ID] = &p
	out := p
	return &out, nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*model.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *productRepo) List(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Product
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case model.SortByPrice:
			less = out[i].Price < out[j].Price
		case model.SortByStock:
			less = out[i].Stock < out[j].Stock
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if filter.SortDesc {
			return !less
		}
		return less
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *productRepo) SearchWithRating(_ context.Context, query string, limit, offset int) ([]model.RatedProduct, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(query)
	var out []model.RatedProduct
	for _, p := range s.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		var sum, n int
		for _, rv := range s.reviews {
			if rv.ProductID == p.ID {
				sum += rv.Rating
				n++
			}
		}
		rated := model.RatedProduct{Product: *p}
		if n > 0 {
			rated.AvgRating = float64(sum) / float64(n)
		}
		out = append(out, rated)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })

	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *productRepo) Suggestions(_ context.Context, prefix string, limit int) ([]string, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix = strings.ToLower(prefix)
	var out []string
	for _, p := range s.products {
		if strings.HasPrefix(strings.ToLower(p.Name), prefix) {
			out = append(out, p.Name)
		}
	}
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *productRepo) Count(_ context.Context) (int, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products), nil
}

type cartRepo Store

func (r *cartRepo) GetOrCreate(_ context.Context, userID int64) (*model.Cart, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		if c.UserID == userID {
			out := *c
			return &out, nil
		}
	}
	c := &model.Cart{ID: s.id(), UserID: userID}
	s.carts[c.ID] = c
	out := *c
	return &out, nil
}

func (r *cartRepo) Entries(_ context.Context, cartID int64) ([]model.CartEntry, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*Store)(r).cartEntriesLocked(cartID), nil
}

func (s *Store) cartEntriesLocked(cartID int64) []model.CartEntry {
	var out []model.CartEntry
	for _, l := range s.cartLines {
		if l.CartID != cartID {
			continue
		}
		p, ok := s.products[l.ProductID]
		if !ok {
			continue
		}
		out = append(out, model.CartEntry{Line: *l, Product: *p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line.ID < out[j].Line.ID })
	return out
}

func (r *cartRepo) GetLine(_ context.Context, cartID, productID int64) (*model.CartLine, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.cartLines {
		if l.CartID == cartID && l.ProductID == productID {
			out := *l
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *cartRepo) InsertLine(_ context.Context, line *model.CartLine) (*model.CartLine, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.cartLines {
		if l.CartID == line.CartID && l.ProductID == line.ProductID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	l := *line
	l.ID = s.id()
	s.cartLines[l.ID] = &l
	out := l
	return &out, nil
}

func (r *cartRepo) UpdateLineQuantity(_ context.Context, lineID int64, quantity int) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.cartLines[lineID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	l.Quantity = quantity
	return nil
}

func (r *cartRepo) SetLineSelected(_ context.Context, lineID int64, selected bool) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.cartLines[lineID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	l.Selected = selected
	return nil
}

func (r *cartRepo) DeleteLine(_ context.Context, lineID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartLines[lineID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.cartLines, lineID)
	return nil
}

func (r *cartRepo) Clear(_ context.Context, cartID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.cartLines {
		if l.CartID == cartID {
			delete(s.cartLines, id)
		}
	}
	return nil
}

type voucherRepo Store

func (r *voucherRepo) Create(_ context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vouchers {
		if v.UserID == voucher.UserID && v.Code == voucher.Code {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	v := *voucher
	v.ID = s.id()
	s.vouchers[v.ID] = &v
	out := v
	return &out, nil
}

func (r *voucherRepo) GetByCode(_ context.Context, userID int64, code string) (*model.Voucher, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vouchers {
		if v.UserID == userID && v.Code == code {
			out := *v
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *voucherRepo) ListByUser(_ context.Context, userID int64) ([]model.Voucher, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Voucher
	for _, v := range s.vouchers {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type orderRepo Store

// Place mirrors the storage transaction: every check and mutation happens
// under one lock, and the first failure leaves the store untouched.
func (r *orderRepo) Place(_ context.Context, draft model.OrderDraft) (*model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cartEntriesLocked(draft.CartID)
	var selected []model.CartEntry
	for _, e := range entries {
		if e.Line.Selected {
			selected = append(selected, e)
		}
	}
	if len(selected) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	for _, e := range selected {
		if s.products[e.Product.ID].Stock < e.Line.Quantity {
			return nil, domainErrors.ErrInsufficientStock
		}
	}

	var voucher *model.Voucher
	if draft.VoucherID != 0 {
		v, ok := s.vouchers[draft.VoucherID]
		if !ok {
			return nil, domainErrors.ErrInvalidVoucher
		}
		if v.UsageCount >= v.MaxUsage {
			return nil, domainErrors.ErrVoucherLimitReached
		}
		voucher = v
	}

	order := &model.Order{
		ID:             s.id(),
		UserID:         draft.UserID,
		Number:         draft.Number,
		Status:         model.OrderStatusPending,
		TotalPrice:     draft.TotalPrice,
		Address:        draft.Address,
		PhoneNumber:    draft.PhoneNumber,
		ShippingMethod: draft.ShippingMethod,
		ShippingFee:    draft.ShippingFee,
		DiscountAmount: draft.DiscountAmount,
		CreatedAt:      time.Now(),
	}
	s.orders[order.ID] = order

	for _, e := range selected {
		s.orderLines[order.ID] = append(s.orderLines[order.ID], model.OrderLine{
			ID:        s.id(),
			OrderID:   order.ID,
			ProductID: e.Product.ID,
			Quantity:  e.Line.Quantity,
			UnitPrice: e.Product.Price,
		})
		s.products[e.Product.ID].Stock -= e.Line.Quantity
		delete(s.cartLines, e.Line.ID)
	}

	if voucher != nil {
		voucher.UsageCount++
		s.orderVouchers[order.ID] = voucher.ID
	}

	out := *order
	return &out, nil
}

func (r *orderRepo) GetByID(_ context.Context, id int64) (*model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *orderRepo) ListByUser(_ context.Context, userID int64) ([]model.Order, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *orderRepo) Entries(_ context.Context, orderID int64) ([]model.OrderEntry, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.OrderEntry
	for _, l := range s.orderLines[orderID] {
		entry := model.OrderEntry{Line: l}
		if p, ok := s.products[l.ProductID]; ok {
			entry.Product = *p
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, orderID int64, status model.OrderStatus) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.Status = status
	return nil
}

// Cancel restores the stock of every line and marks the order cancelled.
func (r *orderRepo) Cancel(_ context.Context, orderID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if o.Status != model.OrderStatusPending {
		return domainErrors.ErrOrderNotCancellable
	}
	for _, l := range s.orderLines[orderID] {
		if p, ok := s.products[l.ProductID]; ok {
			p.Stock += l.Quantity
		}
	}
	o.Status = model.OrderStatusCancelled
	return nil
}

type reviewRepo Store

func (r *reviewRepo) Create(_ context.Context, review *model.Review) (*model.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rv := range s.reviews {
		if rv.UserID == review.UserID && rv.ProductID == review.ProductID && rv.OrderID == review.OrderID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	rv := *review
	rv.ID = s.id()
	rv.CreatedAt = time.Now()
	s.reviews[rv.ID] = &rv
	out := rv
	return &out, nil
}

func (r *reviewRepo) ListByProduct(_ context.Context, productID int64) ([]model.Review, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Review
	for _, rv := range s.reviews {
		if rv.ProductID == productID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type wishlistRepo Store

func (r *wishlistRepo) Add(_ context.Context, userID, productID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{userID, productID}
	if _, ok := s.wishlist[key]; ok {
		return domainErrors.ErrAlreadyExists
	}
	s.wishlist[key] = time.Now()
	return nil
}

func (r *wishlistRepo) Remove(_ context.Context, userID, productID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlist, [2]int64{userID, productID})
	return nil
}

func (r *wishlistRepo) ListByUser(_ context.Context, userID int64) ([]model.Product, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Product
	for key := range s.wishlist {
		if key[0] != userID {
			continue
		}
		if p, ok := s.products[key[1]]; ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type notificationRepo Store

func (r *notificationRepo) Insert(_ context.Context, notification *model.Notification) (*model.Notification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := *notification
	n.ID = s.id()
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = &n
	out := n
	return &out, nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID int64) ([]model.Notification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *notificationRepo) UnreadCount(_ context.Context, userID int64) (int, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, userID, notificationID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok || n.UserID != userID {
		return domainErrors.ErrNotFound
	}
	n.Read = true
	return nil
}

func (r *notificationRepo) MarkAllRead(_ context.Context, userID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *notificationRepo) SelectBatchForPublishing(_ context.Context, limit int) ([]model.Notification, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var out []model.Notification
	for _, n := range s.notifications {
		if n.Published {
			continue
		}
		if claimed, ok := s.claims[n.ID]; ok && now.Sub(claimed) < time.Minute {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for _, n := range out {
		s.claims[n.ID] = now
	}
	return out, nil
}

func (r *notificationRepo) MarkPublished(_ context.Context, notificationID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	n.Published = true
	delete(s.claims, notificationID)
	return nil
}

type addressRepo Store

func (r *addressRepo) Create(_ context.Context, address *model.Address) (*model.Address, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	a := *address
	a.ID = s.id()
	a.CreatedAt = time.Now()
	s.addresses[a.ID] = &a
	out := a
	return &out, nil
}

func (r *addressRepo) ListByUser(_ context.Context, userID int64) ([]model.Address, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Address
	for _, a := range s.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *addressRepo) GetByID(_ context.Context, id int64) (*model.Address, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.addresses[id]; ok {
		out := *a
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (r *addressRepo) SetDefault(_ context.Context, userID, addressID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.addresses[addressID]
	if !ok || target.UserID != userID {
		return domainErrors.ErrNotFound
	}
	for _, a := range s.addresses {
		if a.UserID == userID {
			a.IsDefault = a.ID == addressID
		}
	}
	return nil
}

func (r *addressRepo) Delete(_ context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.addresses, id)
	return nil
}

type cardRepo Store

func (r *cardRepo) Create(_ context.Context, card *model.PaymentCard) (*model.PaymentCard, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *card
	c.ID = s.id()
	c.CreatedAt = time.Now()
	s.cards[c.ID] = &c
	out := c
	return &out, nil
}

func (r *cardRepo) ListByUser(_ context.Context, userID int64) ([]model.PaymentCard, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.PaymentCard
	for _, c := range s.cards {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *cardRepo) Delete(_ context.Context, userID, cardID int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[cardID]
	if !ok || c.UserID != userID {
		return domainErrors.ErrNotFound
	}
	delete(s.cards, cardID)
	return nil
}
