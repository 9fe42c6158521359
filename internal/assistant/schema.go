package assistant

// databaseSchema is the prompt-side description of the tables the assistant
// may query. Kept by hand; update it when models change.
const databaseSchema = `
The database uses MySQL.

Table: warehouses
- id (char(36), primary key)
- name (text)
- address (text)
- capacity_sqft (integer)

Table: warehouse_locations
- id (char(36), primary key)
- parent_id (char(36), self-reference to warehouse_locations.id, NULL for roots, cascades on delete)
- type (text: SECTION, FLOOR, ROW, COLUMN, ROOF, BIN, SHELF)
- name (text)
- path (text, materialized full path like "ZoneA-Row-01")
- capacity (integer)
- current_utilization (integer)

Table: inventory_items
- id (char(36), primary key)
- sku (text, unique)
- name (text)
- category (text)
- min_threshold (integer)
- max_threshold (integer)
- unit_cost (decimal)
- warehouse_id (char(36), foreign key to warehouses.id)

Table: inventory_stock
- id (char(36), primary key)
- item_id (char(36), foreign key to inventory_items.id)
- location_id (char(36), foreign key to warehouse_locations.id)
- quantity (integer)
- last_updated (datetime)

Table: movements
- id (char(36), primary key)
- item_id (char(36), foreign key to inventory_items.id)
- from_location_id (char(36), nullable)
- to_location_id (char(36), nullable)
- quantity (integer)
- reason (text)
- created_at (datetime)

Table: orders
- id (char(36), primary key)
- order_number (text, unique)
- customer_name (text)
- status (text: pending, picking, packing, shipped, cancelled)
- priority (text: normal, high, urgent)
- warehouse_id (char(36), foreign key to warehouses.id)
- created_at (datetime)

Table: order_items
- id (char(36), primary key)
- order_id (char(36), foreign key to orders.id)
- item_id (char(36), foreign key to inventory_items.id)
- quantity_ordered (integer)
- quantity_picked (integer)

Table: alert_rules
- id (char(36), primary key)
- alert_type (text: low_stock, overstock, slow_moving)
- conditions_json (json)
- is_active (boolean)

Table: generated_alerts
- id (char(36), primary key)
- alert_rule_id (char(36), foreign key to alert_rules.id)
- severity (text: info, warning, critical)
- message (text)
- created_at (datetime)

Table: daily_insights
- id (char(36), primary key)
- type (text: summary, anomaly, trend)
- title (text)
- content (text)
- severity (text: info, warning, critical)
- created_at (datetime)

Table: reorder_recommendations
- id (char(36), primary key)
- item_id (char(36), foreign key to inventory_items.id)
- recommended_quantity (integer)
- reasoning (text)
- confidence_score (integer)
- status (text: pending, accepted, rejected)
`
