package migrate

// Delta is one versioned schema step. Up and Down are applied statement by
// statement inside a single transaction.
type Delta struct {
	Version int
	Name    string
	Up      []string
	Down    []string
}

// Deltas returns the order aggregate schema in application order.
func Deltas() []Delta {
	schemas := []func() Delta{
		ordersSchema,
		deliverySchema,
		paymentSchema,
		itemsSchema,
		ownerIndexes,
	}

	deltas := make([]Delta, 0, len(schemas))
	for i, fn := range schemas {
		d := fn()
		d.Version = i + 1
		deltas = append(deltas, d)
	}
	return deltas
}

func ordersSchema() Delta {
	return Delta{
		Name: "create_orders",
		Up: []string{`
CREATE TABLE IF NOT EXISTS orders (
    order_uid          {{uuid}} PRIMARY KEY{{uuid_default}},
    track_number       VARCHAR(255) NOT NULL,
    entry              VARCHAR(255) NOT NULL,
    locale             VARCHAR(32),
    internal_signature TEXT,
    customer_id        VARCHAR(255) NOT NULL,
    delivery_service   VARCHAR(255),
    shardkey           VARCHAR(255),
    sm_id              INTEGER,
    date_created       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    oof_shard          VARCHAR(255)
)`},
		Down: []string{`DROP TABLE IF EXISTS orders`},
	}
}

func deliverySchema() Delta {
	return Delta{
		Name: "create_delivery",
		Up: []string{`
CREATE TABLE IF NOT EXISTS delivery (
    delivery_id {{serial}},
    order_uid   {{uuid}} REFERENCES orders (order_uid) ON DELETE CASCADE,
    name        VARCHAR(255) NOT NULL,
    phone       VARCHAR(64) NOT NULL,
    zip         VARCHAR(64) NOT NULL,
    city        VARCHAR(255) NOT NULL,
    address     VARCHAR(255) NOT NULL,
    region      VARCHAR(255) NOT NULL,
    email       VARCHAR(255) NOT NULL
)`},
		Down: []string{`DROP TABLE IF EXISTS delivery`},
	}
}

func paymentSchema() Delta {
	return Delta{
		Name: "create_payment",
		Up: []string{`
CREATE TABLE IF NOT EXISTS payment (
    payment_id    {{serial}},
    order_uid     {{uuid}} REFERENCES orders (order_uid) ON DELETE CASCADE,
    "transaction" VARCHAR(255) NOT NULL,
    request_id    VARCHAR(255),
    currency      VARCHAR(16) NOT NULL,
    provider      VARCHAR(255) NOT NULL,
    amount        INTEGER NOT NULL,
    payment_dt    BIGINT NOT NULL DEFAULT {{epoch_now}},
    bank          VARCHAR(255) NOT NULL,
    delivery_cost INTEGER NOT NULL,
    goods_total   INTEGER NOT NULL,
    custom_fee    INTEGER NOT NULL
)`},
		Down: []string{`DROP TABLE IF EXISTS payment`},
	}
}

func itemsSchema() Delta {
	return Delta{
		Name: "create_items",
		Up: []string{`
CREATE TABLE IF NOT EXISTS items (
    item_id      {{serial}},
    order_uid    {{uuid}} REFERENCES orders (order_uid) ON DELETE CASCADE,
    chrt_id      BIGINT NOT NULL,
    track_number VARCHAR(255) NOT NULL,
    price        INTEGER NOT NULL,
    rid          VARCHAR(255) NOT NULL,
    name         VARCHAR(255) NOT NULL,
    sale         INTEGER NOT NULL,
    size         VARCHAR(64) NOT NULL,
    total_price  INTEGER NOT NULL,
    nm_id        BIGINT NOT NULL,
    brand        VARCHAR(255) NOT NULL,
    status       INTEGER NOT NULL
)`},
		Down: []string{`DROP TABLE IF EXISTS items`},
	}
}

// ownerIndexes makes delivery and payment strictly one per order.
func ownerIndexes() Delta {
	return Delta{
		Name: "owner_indexes",
		Up: []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS delivery_order_uid_key ON delivery (order_uid)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS payment_order_uid_key ON payment (order_uid)`,
			`CREATE INDEX IF NOT EXISTS items_order_uid_idx ON items (order_uid)`,
		},
		Down: []string{
			`DROP INDEX IF EXISTS items_order_uid_idx`,
			`DROP INDEX IF EXISTS payment_order_uid_key`,
			`DROP INDEX IF EXISTS delivery_order_uid_key`,
		},
	}
}
