package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys shared by services and controllers.
const (
	ErrList   = "error.list"
	ErrGet    = "error.get"
	ErrCreate = "error.create"
	ErrUpdate = "error.update"
	ErrDelete = "error.delete"

	MsgDeleted       = "msg.deleted"
	MsgSaved         = "msg.saved"
	MsgConfirmDelete = "msg.confirm_delete"
)

var entries = map[string]map[language.Tag]string{
	ErrList:          {PortugueseBR: "Erro ao listar os registros.", English: "Could not list the records."},
	ErrGet:           {PortugueseBR: "Erro ao consultar o registro.", English: "Could not load the record."},
	ErrCreate:        {PortugueseBR: "Erro ao criar o registro.", English: "Could not create the record."},
	ErrUpdate:        {PortugueseBR: "Erro ao atualizar o registro.", English: "Could not update the record."},
	ErrDelete:        {PortugueseBR: "Erro ao apagar o registro.", English: "Could not delete the record."},
	MsgDeleted:       {PortugueseBR: "Registro apagado com sucesso!", English: "Record deleted."},
	MsgSaved:         {PortugueseBR: "Registro salvo com sucesso!", English: "Record saved."},
	MsgConfirmDelete: {PortugueseBR: "Realmente deseja apagar?", English: "Do you really want to delete it?"},

	"validation.required":   {PortugueseBR: "Este campo é obrigatório", English: "This field is required"},
	"validation.min":        {PortugueseBR: "Deve ter pelo menos %s caracteres", English: "Must be at least %s characters"},
	"validation.max":        {PortugueseBR: "Deve ter no máximo %s caracteres", English: "Must be at most %s characters"},
	"validation.email":      {PortugueseBR: "Email inválido", English: "Invalid email"},
	"validation.oneof":      {PortugueseBR: "Opção inválida", English: "Invalid option"},
	"validation.gt":         {PortugueseBR: "Selecione um registro", English: "Select a record"},
	"validation.gte":        {PortugueseBR: "Deve ser maior ou igual a %s", English: "Must be greater than or equal to %s"},
	"validation.datetime":   {PortugueseBR: "Data inválida", English: "Invalid date"},
	"validation.not_before": {PortugueseBR: "Não pode ser anterior ao início", English: "Cannot be before the start"},
	"validation.invalid":    {PortugueseBR: "Valor inválido", English: "Invalid value"},

	"nav.home":        {PortugueseBR: "Página inicial", English: "Home"},
	"nav.orders":      {PortugueseBR: "Ordens de serviço", English: "Service orders"},
	"nav.equipments":  {PortugueseBR: "Equipamentos", English: "Equipment"},
	"nav.technicians": {PortugueseBR: "Técnicos", English: "Technicians"},
	"nav.items":       {PortugueseBR: "Itens", English: "Items"},

	"action.new":        {PortugueseBR: "Nova", English: "New"},
	"action.save":       {PortugueseBR: "Salvar", English: "Save"},
	"action.save_close": {PortugueseBR: "Salvar e fechar", English: "Save and close"},
	"action.delete":     {PortugueseBR: "Apagar", English: "Delete"},
	"action.back":       {PortugueseBR: "Voltar", English: "Back"},
	"action.edit":       {PortugueseBR: "Editar", English: "Edit"},
	"action.export":     {PortugueseBR: "Exportar", English: "Export"},
	"action.search":     {PortugueseBR: "Pesquisar...", English: "Search..."},
	"action.add_line":   {PortugueseBR: "Adicionar item", English: "Add item"},

	"list.empty":   {PortugueseBR: "Nenhum registro encontrado.", English: "No records found."},
	"list.actions": {PortugueseBR: "Ações", English: "Actions"},
	"list.page":    {PortugueseBR: "Página %d de %d", English: "Page %d of %d"},

	"field.id":           {PortugueseBR: "ID", English: "ID"},
	"field.name":         {PortugueseBR: "Nome", English: "Name"},
	"field.serieNumber":  {PortugueseBR: "Número de série", English: "Serial number"},
	"field.type":         {PortugueseBR: "Tipo", English: "Type"},
	"field.description":  {PortugueseBR: "Descrição", English: "Description"},
	"field.email":        {PortugueseBR: "Email", English: "Email"},
	"field.category":     {PortugueseBR: "Categoria", English: "Category"},
	"field.price":        {PortugueseBR: "Preço", English: "Price"},
	"field.amount":       {PortugueseBR: "Quantidade", English: "Amount"},
	"field.equipmentID":  {PortugueseBR: "Equipamento", English: "Equipment"},
	"field.technicianID": {PortugueseBR: "Técnico", English: "Technician"},
	"field.itemID":       {PortugueseBR: "Item", English: "Item"},
	"field.defect":       {PortugueseBR: "Defeito", English: "Defect"},
	"field.causes":       {PortugueseBR: "Causa", English: "Cause"},
	"field.solution":     {PortugueseBR: "Solução", English: "Solution"},
	"field.status":       {PortugueseBR: "Status", English: "Status"},
	"field.date_init_os": {PortugueseBR: "Início", English: "Start"},
	"field.date_end_os":  {PortugueseBR: "Término", English: "End"},
	"field.total":        {PortugueseBR: "Total", English: "Total"},

	"status.open":   {PortugueseBR: "Aberta", English: "Open"},
	"status.closed": {PortugueseBR: "Fechada", English: "Closed"},

	"section.general": {PortugueseBR: "Geral", English: "General"},
	"section.lines":   {PortugueseBR: "Itens e serviços", English: "Items and services"},

	"dashboard.technicians": {PortugueseBR: "Técnicos", English: "Technicians"},
	"dashboard.equipments":  {PortugueseBR: "Equipamentos", English: "Equipment"},
	"dashboard.items":       {PortugueseBR: "Itens", English: "Items"},
	"dashboard.orders":      {PortugueseBR: "Ordens de serviço", English: "Service orders"},

	"title.equipment":  {PortugueseBR: "Equipamento", English: "Equipment"},
	"title.technician": {PortugueseBR: "Técnico", English: "Technician"},
	"title.item":       {PortugueseBR: "Item", English: "Item"},
	"title.order":      {PortugueseBR: "Ordem de serviço", English: "Service order"},
	"title.new":        {PortugueseBR: "Novo registro", English: "New record"},
}

func init() {
	for key, byLang := range entries {
		for tag, msg := range byLang {
			if err := message.SetString(tag, key, msg); err != nil {
				panic("i18n: " + key + ": " + err.Error())
			}
		}
	}
}
