package constants

//============== RESOURCES ==============

// Backend collection paths.
const (
	ResourceEquipments  = "equipments"
	ResourceTechnicians = "technicians"
	ResourceItems       = "items"
	ResourceOrders      = "orders"
	ResourceOrderLines  = "itemofLines"
)

// NewRecordID is the detail page id of a record not yet created.
const NewRecordID = "nova"

//============== FIXED CHOICES ==============

// EquipmentTypes is the list offered by the equipment form.
var EquipmentTypes = []string{"Mecânico", "Elétrico", "Eletrônico", "Hidráulico", "Pneumático", "Outro"}

// OrderTypes are the kinds of maintenance a service order can describe.
var OrderTypes = []string{"Corretiva", "Preventiva", "Garantia"}

//============== FORM ACTIONS ==============

const (
	ActionSave      = "save"
	ActionSaveClose = "save_close"
)

//============== CACHE KEYS ==============

const (
	// Pending one-shot messages of a session.
	// Format: flash:<sessionID> -> JSON list of messages
	CacheKeyFlash = "flash:%s"
)

//============== HTTP ==============

const (
	SessionCookie = "console_session"

	HeaderHXRequest = "HX-Request"
	HeaderHXTrigger = "HX-Trigger"
	HeaderHXTarget  = "HX-Target"
)
