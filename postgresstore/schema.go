package postgresstore

// Schema is the DDL for the store's default table layout. Deployments that
// rename tables via WithTableNames must rename them here accordingly.
const Schema = `
CREATE TABLE IF NOT EXISTS reservations (
    id          UUID PRIMARY KEY,
    book_id     UUID        NOT NULL,
    member_id   UUID        NOT NULL,
    status      TEXT        NOT NULL,
    term        TIMESTAMPTZ NULL,
    created_at  TIMESTAMPTZ NOT NULL,
    modified_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reservations_member_active
    ON reservations (member_id) WHERE status IN ('R', 'I');

CREATE TABLE IF NOT EXISTS books (
    id             UUID PRIMARY KEY,
    title          TEXT        NOT NULL,
    author_id      UUID        NOT NULL,
    publisher_id   UUID        NOT NULL,
    isbn           TEXT        NOT NULL DEFAULT '',
    language       TEXT        NOT NULL DEFAULT '',
    published_at   INTEGER     NOT NULL DEFAULT 0,
    pages          INTEGER     NOT NULL DEFAULT 0,
    reservation_id UUID        NULL REFERENCES reservations (id),
    state_version  BIGINT      NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL,
    modified_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS reservation_extensions (
    id             UUID PRIMARY KEY,
    reservation_id UUID        NOT NULL REFERENCES reservations (id),
    status         TEXT        NOT NULL,
    processed_by   UUID        NULL,
    created_at     TIMESTAMPTZ NOT NULL,
    modified_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extensions_reservation
    ON reservation_extensions (reservation_id);

CREATE TABLE IF NOT EXISTS book_orders (
    id               UUID PRIMARY KEY,
    book_id          UUID        NOT NULL REFERENCES books (id),
    member_id        UUID        NOT NULL,
    reservation_id   UUID        NULL REFERENCES reservations (id),
    status           TEXT        NOT NULL,
    change_reason    TEXT        NOT NULL DEFAULT '',
    last_modified_by UUID        NULL,
    member_notified  BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at       TIMESTAMPTZ NOT NULL,
    seq              BIGSERIAL
);

CREATE INDEX IF NOT EXISTS idx_book_orders_book
    ON book_orders (book_id, created_at, seq);
`
