package posdb

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pos-loyalty-gateway/internal/model"
)

// Store runs the settlement queries on a pgx connection pool.
type Store struct {
	pool             *pgxpool.Pool
	collectItemCodes []string
	redeemPayCodes   []string
}

func NewStore(databaseURL string, collectItemCodes, redeemPayCodes []string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Ping to fail fast.
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Store{
		pool:             pool,
		collectItemCodes: collectItemCodes,
		redeemPayCodes:   redeemPayCodes,
	}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Collection rows are order checks containing at least one of the
// configured loyalty item codes. The member reference lives in the
// item name after a 3-character prefix.
const collectionQuery = `
	select tor.guestchkno,
	       tori.orderid,
	       sum(tori.priceshow) as amount,
	       coalesce(substring(max(case when tori.itemcode = any($1) then tori.itemname end) from 4), '') as member_ref,
	       max(case when tori.itemcode = any($1) then tori.createdate end) as createddate,
	       'COLLECT'::text as mtype
	from torderitem tori
	join torder tor on tori.orderid = tor.orderid
	group by tor.guestchkno, tori.orderid
	having count(case when tori.itemcode = any($1) then 1 end) > 0
`

const redemptionQuery = `
	select tor.guestchkno,
	       topy.orderid,
	       topy.amount,
	       coalesce(topy.extinfo1, '') as member_ref,
	       topy.createdate,
	       'REDEEM'::text as mtype
	from torderpayment topy
	join torder tor on topy.orderid = tor.orderid
	where topy.pycode = any($1)
`

func (s *Store) FetchCollection(ctx context.Context) ([]model.MemberActivity, error) {
	return s.fetch(ctx, collectionQuery, s.collectItemCodes)
}

func (s *Store) FetchRedemption(ctx context.Context) ([]model.MemberActivity, error) {
	return s.fetch(ctx, redemptionQuery, s.redeemPayCodes)
}

func (s *Store) fetch(ctx context.Context, query string, codes []string) ([]model.MemberActivity, error) {
	rows, err := s.pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []model.MemberActivity
	for rows.Next() {
		var a model.MemberActivity
		if err := rows.Scan(&a.GuestCheck, &a.OrderID, &a.Amount, &a.MemberRef, &a.CreatedDate, &a.MType); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
