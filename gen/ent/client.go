// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/licagency/policy-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/licagency/policy-tracker/gen/ent/customer"
	"github.com/licagency/policy-tracker/gen/ent/ingesteddocument"
	"github.com/licagency/policy-tracker/gen/ent/insurancepolicy"
	"github.com/licagency/policy-tracker/gen/ent/premiumrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Customer is the client for interacting with the Customer builders.
	Customer *CustomerClient
	// IngestedDocument is the client for interacting with the IngestedDocument builders.
	IngestedDocument *IngestedDocumentClient
	// InsurancePolicy is the client for interacting with the InsurancePolicy builders.
	InsurancePolicy *InsurancePolicyClient
	// PremiumRecord is the client for interacting with the PremiumRecord builders.
	PremiumRecord *PremiumRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Customer = NewCustomerClient(c.config)
	c.IngestedDocument = NewIngestedDocumentClient(c.config)
	c.InsurancePolicy = NewInsurancePolicyClient(c.config)
	c.PremiumRecord = NewPremiumRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Customer:         NewCustomerClient(cfg),
		IngestedDocument: NewIngestedDocumentClient(cfg),
		InsurancePolicy:  NewInsurancePolicyClient(cfg),
		PremiumRecord:    NewPremiumRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Customer:         NewCustomerClient(cfg),
		IngestedDocument: NewIngestedDocumentClient(cfg),
		InsurancePolicy:  NewInsurancePolicyClient(cfg),
		PremiumRecord:    NewPremiumRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Customer.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Customer.Use(hooks...)
	c.IngestedDocument.Use(hooks...)
	c.InsurancePolicy.Use(hooks...)
	c.PremiumRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Customer.Intercept(interceptors...)
	c.IngestedDocument.Intercept(interceptors...)
	c.InsurancePolicy.Intercept(interceptors...)
	c.PremiumRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CustomerMutation:
		return c.Customer.mutate(ctx, m)
	case *IngestedDocumentMutation:
		return c.IngestedDocument.mutate(ctx, m)
	case *InsurancePolicyMutation:
		return c.InsurancePolicy.mutate(ctx, m)
	case *PremiumRecordMutation:
		return c.PremiumRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CustomerClient is a client for the Customer schema.
type CustomerClient struct {
	config
}

// NewCustomerClient returns a client for the Customer from the given config.
func NewCustomerClient(c config) *CustomerClient {
	return &CustomerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customer.Hooks(f(g(h())))`.
func (c *CustomerClient) Use(hooks ...Hook) {
	c.hooks.Customer = append(c.hooks.Customer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customer.Intercept(f(g(h())))`.
func (c *CustomerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Customer = append(c.inters.Customer, interceptors...)
}

// Create returns a builder for creating a Customer entity.
func (c *CustomerClient) Create() *CustomerCreate {
	mutation := newCustomerMutation(c.config, OpCreate)
	return &CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Customer entities.
func (c *CustomerClient) CreateBulk(builders ...*CustomerCreate) *CustomerCreateBulk {
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomerClient) MapCreateBulk(slice any, setFunc func(*CustomerCreate, int)) *CustomerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomerCreateBulk{err: fmt.Errorf("calling to CustomerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Customer.
func (c *CustomerClient) Update() *CustomerUpdate {
	mutation := newCustomerMutation(c.config, OpUpdate)
	return &CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomerClient) UpdateOne(_m *Customer) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomer(_m))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomerClient) UpdateOneID(id uuid.UUID) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomerID(id))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Customer.
func (c *CustomerClient) Delete() *CustomerDelete {
	mutation := newCustomerMutation(c.config, OpDelete)
	return &CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomerClient) DeleteOne(_m *Customer) *CustomerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomerClient) DeleteOneID(id uuid.UUID) *CustomerDeleteOne {
	builder := c.Delete().Where(customer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomerDeleteOne{builder}
}

// Query returns a query builder for Customer.
func (c *CustomerClient) Query() *CustomerQuery {
	return &CustomerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomer},
		inters: c.Interceptors(),
	}
}

// Get returns a Customer entity by its id.
func (c *CustomerClient) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return c.Query().Where(customer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomerClient) GetX(ctx context.Context, id uuid.UUID) *Customer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicies queries the policies edge of a Customer.
func (c *CustomerClient) QueryPolicies(_m *Customer) *InsurancePolicyQuery {
	query := (&InsurancePolicyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customer.Table, customer.FieldID, id),
			sqlgraph.To(insurancepolicy.Table, insurancepolicy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, customer.PoliciesTable, customer.PoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CustomerClient) Hooks() []Hook {
	return c.hooks.Customer
}

// Interceptors returns the client interceptors.
func (c *CustomerClient) Interceptors() []Interceptor {
	return c.inters.Customer
}

func (c *CustomerClient) mutate(ctx context.Context, m *CustomerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Customer mutation op: %q", m.Op())
	}
}

// IngestedDocumentClient is a client for the IngestedDocument schema.
type IngestedDocumentClient struct {
	config
}

// NewIngestedDocumentClient returns a client for the IngestedDocument from the given config.
func NewIngestedDocumentClient(c config) *IngestedDocumentClient {
	return &IngestedDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingesteddocument.Hooks(f(g(h())))`.
func (c *IngestedDocumentClient) Use(hooks ...Hook) {
	c.hooks.IngestedDocument = append(c.hooks.IngestedDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingesteddocument.Intercept(f(g(h())))`.
func (c *IngestedDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestedDocument = append(c.inters.IngestedDocument, interceptors...)
}

// Create returns a builder for creating a IngestedDocument entity.
func (c *IngestedDocumentClient) Create() *IngestedDocumentCreate {
	mutation := newIngestedDocumentMutation(c.config, OpCreate)
	return &IngestedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestedDocument entities.
func (c *IngestedDocumentClient) CreateBulk(builders ...*IngestedDocumentCreate) *IngestedDocumentCreateBulk {
	return &IngestedDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestedDocumentClient) MapCreateBulk(slice any, setFunc func(*IngestedDocumentCreate, int)) *IngestedDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestedDocumentCreateBulk{err: fmt.Errorf("calling to IngestedDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestedDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestedDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestedDocument.
func (c *IngestedDocumentClient) Update() *IngestedDocumentUpdate {
	mutation := newIngestedDocumentMutation(c.config, OpUpdate)
	return &IngestedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestedDocumentClient) UpdateOne(_m *IngestedDocument) *IngestedDocumentUpdateOne {
	mutation := newIngestedDocumentMutation(c.config, OpUpdateOne, withIngestedDocument(_m))
	return &IngestedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestedDocumentClient) UpdateOneID(id uuid.UUID) *IngestedDocumentUpdateOne {
	mutation := newIngestedDocumentMutation(c.config, OpUpdateOne, withIngestedDocumentID(id))
	return &IngestedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestedDocument.
func (c *IngestedDocumentClient) Delete() *IngestedDocumentDelete {
	mutation := newIngestedDocumentMutation(c.config, OpDelete)
	return &IngestedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestedDocumentClient) DeleteOne(_m *IngestedDocument) *IngestedDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestedDocumentClient) DeleteOneID(id uuid.UUID) *IngestedDocumentDeleteOne {
	builder := c.Delete().Where(ingesteddocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestedDocumentDeleteOne{builder}
}

// Query returns a query builder for IngestedDocument.
func (c *IngestedDocumentClient) Query() *IngestedDocumentQuery {
	return &IngestedDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestedDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestedDocument entity by its id.
func (c *IngestedDocumentClient) Get(ctx context.Context, id uuid.UUID) (*IngestedDocument, error) {
	return c.Query().Where(ingesteddocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestedDocumentClient) GetX(ctx context.Context, id uuid.UUID) *IngestedDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestedDocumentClient) Hooks() []Hook {
	return c.hooks.IngestedDocument
}

// Interceptors returns the client interceptors.
func (c *IngestedDocumentClient) Interceptors() []Interceptor {
	return c.inters.IngestedDocument
}

func (c *IngestedDocumentClient) mutate(ctx context.Context, m *IngestedDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestedDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestedDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestedDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestedDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestedDocument mutation op: %q", m.Op())
	}
}

// InsurancePolicyClient is a client for the InsurancePolicy schema.
type InsurancePolicyClient struct {
	config
}

// NewInsurancePolicyClient returns a client for the InsurancePolicy from the given config.
func NewInsurancePolicyClient(c config) *InsurancePolicyClient {
	return &InsurancePolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insurancepolicy.Hooks(f(g(h())))`.
func (c *InsurancePolicyClient) Use(hooks ...Hook) {
	c.hooks.InsurancePolicy = append(c.hooks.InsurancePolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insurancepolicy.Intercept(f(g(h())))`.
func (c *InsurancePolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.InsurancePolicy = append(c.inters.InsurancePolicy, interceptors...)
}

// Create returns a builder for creating a InsurancePolicy entity.
func (c *InsurancePolicyClient) Create() *InsurancePolicyCreate {
	mutation := newInsurancePolicyMutation(c.config, OpCreate)
	return &InsurancePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InsurancePolicy entities.
func (c *InsurancePolicyClient) CreateBulk(builders ...*InsurancePolicyCreate) *InsurancePolicyCreateBulk {
	return &InsurancePolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsurancePolicyClient) MapCreateBulk(slice any, setFunc func(*InsurancePolicyCreate, int)) *InsurancePolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsurancePolicyCreateBulk{err: fmt.Errorf("calling to InsurancePolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsurancePolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsurancePolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InsurancePolicy.
func (c *InsurancePolicyClient) Update() *InsurancePolicyUpdate {
	mutation := newInsurancePolicyMutation(c.config, OpUpdate)
	return &InsurancePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsurancePolicyClient) UpdateOne(_m *InsurancePolicy) *InsurancePolicyUpdateOne {
	mutation := newInsurancePolicyMutation(c.config, OpUpdateOne, withInsurancePolicy(_m))
	return &InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsurancePolicyClient) UpdateOneID(id uuid.UUID) *InsurancePolicyUpdateOne {
	mutation := newInsurancePolicyMutation(c.config, OpUpdateOne, withInsurancePolicyID(id))
	return &InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InsurancePolicy.
func (c *InsurancePolicyClient) Delete() *InsurancePolicyDelete {
	mutation := newInsurancePolicyMutation(c.config, OpDelete)
	return &InsurancePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsurancePolicyClient) DeleteOne(_m *InsurancePolicy) *InsurancePolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsurancePolicyClient) DeleteOneID(id uuid.UUID) *InsurancePolicyDeleteOne {
	builder := c.Delete().Where(insurancepolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsurancePolicyDeleteOne{builder}
}

// Query returns a query builder for InsurancePolicy.
func (c *InsurancePolicyClient) Query() *InsurancePolicyQuery {
	return &InsurancePolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsurancePolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a InsurancePolicy entity by its id.
func (c *InsurancePolicyClient) Get(ctx context.Context, id uuid.UUID) (*InsurancePolicy, error) {
	return c.Query().Where(insurancepolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsurancePolicyClient) GetX(ctx context.Context, id uuid.UUID) *InsurancePolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCustomer queries the customer edge of a InsurancePolicy.
func (c *InsurancePolicyClient) QueryCustomer(_m *InsurancePolicy) *CustomerQuery {
	query := (&CustomerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insurancepolicy.Table, insurancepolicy.FieldID, id),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insurancepolicy.CustomerTable, insurancepolicy.CustomerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsurancePolicyClient) Hooks() []Hook {
	return c.hooks.InsurancePolicy
}

// Interceptors returns the client interceptors.
func (c *InsurancePolicyClient) Interceptors() []Interceptor {
	return c.inters.InsurancePolicy
}

func (c *InsurancePolicyClient) mutate(ctx context.Context, m *InsurancePolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsurancePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsurancePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsurancePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InsurancePolicy mutation op: %q", m.Op())
	}
}

// PremiumRecordClient is a client for the PremiumRecord schema.
type PremiumRecordClient struct {
	config
}

// NewPremiumRecordClient returns a client for the PremiumRecord from the given config.
func NewPremiumRecordClient(c config) *PremiumRecordClient {
	return &PremiumRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `premiumrecord.Hooks(f(g(h())))`.
func (c *PremiumRecordClient) Use(hooks ...Hook) {
	c.hooks.PremiumRecord = append(c.hooks.PremiumRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `premiumrecord.Intercept(f(g(h())))`.
func (c *PremiumRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PremiumRecord = append(c.inters.PremiumRecord, interceptors...)
}

// Create returns a builder for creating a PremiumRecord entity.
func (c *PremiumRecordClient) Create() *PremiumRecordCreate {
	mutation := newPremiumRecordMutation(c.config, OpCreate)
	return &PremiumRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PremiumRecord entities.
func (c *PremiumRecordClient) CreateBulk(builders ...*PremiumRecordCreate) *PremiumRecordCreateBulk {
	return &PremiumRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PremiumRecordClient) MapCreateBulk(slice any, setFunc func(*PremiumRecordCreate, int)) *PremiumRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PremiumRecordCreateBulk{err: fmt.Errorf("calling to PremiumRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PremiumRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PremiumRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PremiumRecord.
func (c *PremiumRecordClient) Update() *PremiumRecordUpdate {
	mutation := newPremiumRecordMutation(c.config, OpUpdate)
	return &PremiumRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PremiumRecordClient) UpdateOne(_m *PremiumRecord) *PremiumRecordUpdateOne {
	mutation := newPremiumRecordMutation(c.config, OpUpdateOne, withPremiumRecord(_m))
	return &PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PremiumRecordClient) UpdateOneID(id uuid.UUID) *PremiumRecordUpdateOne {
	mutation := newPremiumRecordMutation(c.config, OpUpdateOne, withPremiumRecordID(id))
	return &PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PremiumRecord.
func (c *PremiumRecordClient) Delete() *PremiumRecordDelete {
	mutation := newPremiumRecordMutation(c.config, OpDelete)
	return &PremiumRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PremiumRecordClient) DeleteOne(_m *PremiumRecord) *PremiumRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PremiumRecordClient) DeleteOneID(id uuid.UUID) *PremiumRecordDeleteOne {
	builder := c.Delete().Where(premiumrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PremiumRecordDeleteOne{builder}
}

// Query returns a query builder for PremiumRecord.
func (c *PremiumRecordClient) Query() *PremiumRecordQuery {
	return &PremiumRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePremiumRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PremiumRecord entity by its id.
func (c *PremiumRecordClient) Get(ctx context.Context, id uuid.UUID) (*PremiumRecord, error) {
	return c.Query().Where(premiumrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PremiumRecordClient) GetX(ctx context.Context, id uuid.UUID) *PremiumRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PremiumRecordClient) Hooks() []Hook {
	return c.hooks.PremiumRecord
}

// Interceptors returns the client interceptors.
func (c *PremiumRecordClient) Interceptors() []Interceptor {
	return c.inters.PremiumRecord
}

func (c *PremiumRecordClient) mutate(ctx context.Context, m *PremiumRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PremiumRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PremiumRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PremiumRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PremiumRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Customer, IngestedDocument, InsurancePolicy, PremiumRecord []ent.Hook
	}
	inters struct {
		Customer, IngestedDocument, InsurancePolicy, PremiumRecord []ent.Interceptor
	}
)
