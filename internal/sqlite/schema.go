package sqlite

// Table names, one per entity kind.
const (
	tableClients      = "clients"
	tableServices     = "services"
	tableExpenses     = "expenses"
	tableAppointments = "appointments"
	tableRevenues     = "revenues"
)

// Every kind table has the same shape: a record id, the element's position
// in its collection, and the element encoded as JSON.
const (
	createClients = `CREATE TABLE IF NOT EXISTS clients (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createServices = `CREATE TABLE IF NOT EXISTS services (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createExpenses = `CREATE TABLE IF NOT EXISTS expenses (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createAppointments = `CREATE TABLE IF NOT EXISTS appointments (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createRevenues = `CREATE TABLE IF NOT EXISTS revenues (
    record_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    payload TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Position indexes keep ordered reads cheap.
const (
	idxClientsPosition      = `CREATE UNIQUE INDEX IF NOT EXISTS idx_clients_position ON clients(position);`
	idxServicesPosition     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_services_position ON services(position);`
	idxExpensesPosition     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_expenses_position ON expenses(position);`
	idxAppointmentsPosition = `CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_position ON appointments(position);`
	idxRevenuesPosition     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_revenues_position ON revenues(position);`
)

// schemaDDL lists every statement run on Attach, tables before indexes.
var schemaDDL = []string{
	createClients,
	createServices,
	createExpenses,
	createAppointments,
	createRevenues,
	idxClientsPosition,
	idxServicesPosition,
	idxExpensesPosition,
	idxAppointmentsPosition,
	idxRevenuesPosition,
}

// dbFileName is the database file created inside the data directory.
const dbFileName = "homebiz.db"
