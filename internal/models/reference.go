package models

// Stores é o conjunto fixo de lojas parceiras aceitas no cadastro.
var Stores = []string{
	"C&A",
	"Renner",
	"Shein",
	"AliExpress",
	"Vivara",
	"Vans",
	"Casas Bahia",
	"FARM Rio",
	"Riachuelo",
	"Shopee",
	"Amazon",
	"Mercado Livre",
}

// ValidStore informa se a loja pertence ao conjunto fixo.
func ValidStore(store string) bool {
	for _, s := range Stores {
		if s == store {
			return true
		}
	}
	return false
}

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

// CategoryField descreve um campo do formulário de características.
// O tipo é apenas descritivo nesta camada; a validação verifica presença.
type CategoryField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Category define o contrato de validação do mapa de características de um produto.
type Category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Fields []CategoryField `json:"fields"`
}

// Campos universais compartilhados por todas as categorias de produto físico.
var universalFields = []CategoryField{
	{Name: "sku", Label: "SKU", Type: FieldText, Required: false},
	{Name: "ean", Label: "EAN/GTIN", Type: FieldText, Required: false},
	{Name: "brand", Label: "Marca", Type: FieldText, Required: true},
	{Name: "weight", Label: "Peso (kg)", Type: FieldNumber, Required: false},
	{Name: "warranty", Label: "Garantia", Type: FieldText, Required: false},
}

func withUniversal(fields ...CategoryField) []CategoryField {
	out := make([]CategoryField, 0, len(universalFields)+len(fields))
	out = append(out, universalFields...)
	out = append(out, fields...)
	return out
}

// Categories é a tabela estática de categorias com seus esquemas de campos.
var Categories = []Category{
	{
		ID:   "fashion",
		Name: "Moda e Vestuário",
		Fields: withUniversal(
			CategoryField{Name: "size", Label: "Tamanho", Type: FieldText, Required: true},
			CategoryField{Name: "color", Label: "Cor", Type: FieldText, Required: true},
			CategoryField{Name: "material", Label: "Material Principal", Type: FieldText, Required: true},
			CategoryField{Name: "gender", Label: "Gênero", Type: FieldSelect, Required: true, Options: []string{"Feminino", "Masculino", "Unissex", "Infantil"}},
			CategoryField{Name: "fit", Label: "Tipo de Corte/Modelagem", Type: FieldText, Required: false},
			CategoryField{Name: "occasion", Label: "Ocasião/Estilo", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "footwear",
		Name: "Calçados e Acessórios",
		Fields: withUniversal(
			CategoryField{Name: "size", Label: "Numeração", Type: FieldText, Required: true},
			CategoryField{Name: "heelHeight", Label: "Altura do Salto/Cano", Type: FieldText, Required: false},
			CategoryField{Name: "upperMaterial", Label: "Material do Cabedal", Type: FieldText, Required: true},
			CategoryField{Name: "soleMaterial", Label: "Material do Solado", Type: FieldText, Required: false},
			CategoryField{Name: "closure", Label: "Tipo de Fechamento", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "jewelry",
		Name: "Joias e Relógios",
		Fields: withUniversal(
			CategoryField{Name: "material", Label: "Material", Type: FieldSelect, Required: true, Options: []string{"Ouro", "Prata", "Aço Inoxidável", "Outro"}},
			CategoryField{Name: "stoneType", Label: "Tipo de Pedra", Type: FieldText, Required: false},
			CategoryField{Name: "gender", Label: "Gênero", Type: FieldSelect, Required: true, Options: []string{"Feminino", "Masculino", "Unissex"}},
			CategoryField{Name: "waterResistance", Label: "Resistência à Água", Type: FieldText, Required: false},
			CategoryField{Name: "mechanism", Label: "Mecanismo", Type: FieldSelect, Required: false, Options: []string{"Analógico", "Digital", "Híbrido"}},
		),
	},
	{
		ID:   "electronics",
		Name: "Eletrônicos e Tecnologia",
		Fields: withUniversal(
			CategoryField{Name: "voltage", Label: "Voltagem", Type: FieldSelect, Required: true, Options: []string{"110V", "220V", "Bivolt"}},
			CategoryField{Name: "processor", Label: "Processador", Type: FieldText, Required: false},
			CategoryField{Name: "ram", Label: "Memória RAM", Type: FieldText, Required: false},
			CategoryField{Name: "storage", Label: "Armazenamento", Type: FieldText, Required: false},
			CategoryField{Name: "os", Label: "Sistema Operacional", Type: FieldText, Required: false},
			CategoryField{Name: "screenSize", Label: "Tamanho da Tela", Type: FieldText, Required: false},
			CategoryField{Name: "connectivity", Label: "Conectividade", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "appliances",
		Name: "Eletrodomésticos",
		Fields: withUniversal(
			CategoryField{Name: "capacity", Label: "Capacidade (L ou Kg)", Type: FieldText, Required: true},
			CategoryField{Name: "power", Label: "Potência (W)", Type: FieldNumber, Required: true},
			CategoryField{Name: "energyEfficiency", Label: "Eficiência Energética", Type: FieldText, Required: false},
			CategoryField{Name: "technology", Label: "Tecnologia", Type: FieldText, Required: false},
			CategoryField{Name: "voltage", Label: "Voltagem", Type: FieldSelect, Required: true, Options: []string{"110V", "220V", "Bivolt"}},
		),
	},
	{
		ID:   "home",
		Name: "Casa, Móveis e Decoração",
		Fields: withUniversal(
			CategoryField{Name: "material", Label: "Material de Fabricação", Type: FieldText, Required: true},
			CategoryField{Name: "assembly", Label: "Necessidade de Montagem", Type: FieldSelect, Required: true, Options: []string{"Sim", "Não"}},
			CategoryField{Name: "dimensions", Label: "Dimensões (A x L x P)", Type: FieldText, Required: true},
			CategoryField{Name: "doors", Label: "Nº de Portas/Gavetas", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "beauty",
		Name: "Beleza e Higiene",
		Fields: withUniversal(
			CategoryField{Name: "volume", Label: "Volume/Peso", Type: FieldText, Required: true},
			CategoryField{Name: "expiry", Label: "Validade", Type: FieldText, Required: true},
			CategoryField{Name: "fragrance", Label: "Família Olfativa", Type: FieldText, Required: false},
			CategoryField{Name: "spf", Label: "FPS", Type: FieldText, Required: false},
			CategoryField{Name: "activeIngredient", Label: "Ativo Principal", Type: FieldText, Required: false},
			CategoryField{Name: "skinType", Label: "Tipo de Pele/Cabelo", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "health",
		Name: "Saúde, Suplementos e Ortopedia",
		Fields: withUniversal(
			CategoryField{Name: "expiry", Label: "Data de Validade", Type: FieldText, Required: true},
			CategoryField{Name: "mainIngredient", Label: "Ingrediente Principal", Type: FieldText, Required: true},
			CategoryField{Name: "dosage", Label: "Modo de Uso/Posologia", Type: FieldTextarea, Required: true},
			CategoryField{Name: "restrictions", Label: "Restrições Alimentares", Type: FieldText, Required: false},
			CategoryField{Name: "certification", Label: "Certificação", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "automotive",
		Name: "Automotivo e Peças",
		Fields: withUniversal(
			CategoryField{Name: "compatibility", Label: "Compatibilidade (Marca/Modelo/Ano)", Type: FieldTextarea, Required: true},
			CategoryField{Name: "oemNumber", Label: "Número OEM", Type: FieldText, Required: false},
			CategoryField{Name: "position", Label: "Posição", Type: FieldSelect, Required: false, Options: []string{"Dianteira", "Traseira", "Universal"}},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "sports",
		Name: "Esportes e Lazer",
		Fields: withUniversal(
			CategoryField{Name: "sport", Label: "Modalidade", Type: FieldText, Required: true},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
			CategoryField{Name: "maxCapacity", Label: "Capacidade Máxima", Type: FieldText, Required: false},
			CategoryField{Name: "fabricTech", Label: "Tecnologia do Tecido", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "toys",
		Name: "Brinquedos e Bebês",
		Fields: withUniversal(
			CategoryField{Name: "ageRange", Label: "Idade Recomendada", Type: FieldText, Required: true},
			CategoryField{Name: "certification", Label: "Certificação (INMETRO)", Type: FieldText, Required: true},
			CategoryField{Name: "maxWeight", Label: "Peso Máximo", Type: FieldText, Required: false},
			CategoryField{Name: "bpaFree", Label: "Livre de BPA", Type: FieldSelect, Required: false, Options: []string{"Sim", "Não"}},
		),
	},
	{
		ID:   "books",
		Name: "Livros, Mídia e Papelaria",
		Fields: withUniversal(
			CategoryField{Name: "isbn", Label: "ISBN", Type: FieldText, Required: false},
			CategoryField{Name: "author", Label: "Autor/Artista", Type: FieldText, Required: true},
			CategoryField{Name: "publisher", Label: "Editora", Type: FieldText, Required: false},
			CategoryField{Name: "genre", Label: "Gênero", Type: FieldText, Required: true},
			CategoryField{Name: "format", Label: "Formato", Type: FieldSelect, Required: true, Options: []string{"Capa Dura", "Capa Comum", "Ebook", "Audiobook"}},
			CategoryField{Name: "language", Label: "Idioma", Type: FieldText, Required: true},
			CategoryField{Name: "pages", Label: "Nº de Páginas", Type: FieldNumber, Required: false},
		),
	},
	{
		ID:   "games",
		Name: "Games",
		Fields: withUniversal(
			CategoryField{Name: "platform", Label: "Plataforma", Type: FieldText, Required: true},
			CategoryField{Name: "genre", Label: "Gênero", Type: FieldText, Required: true},
			CategoryField{Name: "ageRating", Label: "Classificação Etária", Type: FieldText, Required: true},
			CategoryField{Name: "requirements", Label: "Requisitos Mínimos", Type: FieldTextarea, Required: false},
		),
	},
	{
		ID:   "tools",
		Name: "Ferramentas e Melhorias para Casa",
		Fields: withUniversal(
			CategoryField{Name: "power", Label: "Potência", Type: FieldText, Required: false},
			CategoryField{Name: "voltage", Label: "Voltagem", Type: FieldSelect, Required: false, Options: []string{"110V", "220V", "Bivolt", "Bateria"}},
			CategoryField{Name: "usage", Label: "Uso", Type: FieldSelect, Required: true, Options: []string{"Doméstico", "Profissional"}},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
		),
	},
	{
		ID:   "garden",
		Name: "Jardim e Piscina",
		Fields: withUniversal(
			CategoryField{Name: "plantType", Label: "Tipo de Planta/Semente", Type: FieldText, Required: false},
			CategoryField{Name: "growingConditions", Label: "Condições de Cultivo", Type: FieldTextarea, Required: false},
			CategoryField{Name: "composition", Label: "Composição Química", Type: FieldText, Required: false},
			CategoryField{Name: "volume", Label: "Volume/Tratamento", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "food",
		Name: "Alimentos e Bebidas",
		Fields: withUniversal(
			CategoryField{Name: "volume", Label: "Volume/Peso", Type: FieldText, Required: true},
			CategoryField{Name: "expiry", Label: "Validade", Type: FieldText, Required: true},
			CategoryField{Name: "ingredients", Label: "Ingredientes", Type: FieldTextarea, Required: true},
			CategoryField{Name: "nutrition", Label: "Tabela Nutricional", Type: FieldTextarea, Required: false},
			CategoryField{Name: "allergens", Label: "Alergênicos", Type: FieldText, Required: false},
			CategoryField{Name: "alcoholContent", Label: "Teor Alcoólico", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "pets",
		Name: "Pets",
		Fields: withUniversal(
			CategoryField{Name: "species", Label: "Espécie", Type: FieldSelect, Required: true, Options: []string{"Cão", "Gato", "Pássaro", "Outro"}},
			CategoryField{Name: "size", Label: "Porte/Idade", Type: FieldText, Required: false},
			CategoryField{Name: "flavor", Label: "Sabor/Composição", Type: FieldText, Required: false},
			CategoryField{Name: "expiry", Label: "Data de Validade", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "instruments",
		Name: "Instrumentos Musicais",
		Fields: withUniversal(
			CategoryField{Name: "instrumentType", Label: "Tipo de Instrumento", Type: FieldText, Required: true},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
			CategoryField{Name: "finish", Label: "Acabamento", Type: FieldText, Required: false},
			CategoryField{Name: "pickup", Label: "Tipo de Captação", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "collectibles",
		Name: "Colecionáveis e Artesanato",
		Fields: withUniversal(
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
			CategoryField{Name: "yearEdition", Label: "Ano/Edição", Type: FieldText, Required: false},
			CategoryField{Name: "condition", Label: "Condição", Type: FieldSelect, Required: true, Options: []string{"Novo", "Usado - Excelente", "Usado - Bom", "Usado - Regular"}},
			CategoryField{Name: "certificate", Label: "Certificado de Autenticidade", Type: FieldSelect, Required: false, Options: []string{"Sim", "Não"}},
		),
	},
	{
		ID:   "party",
		Name: "Artigos de Festa",
		Fields: withUniversal(
			CategoryField{Name: "theme", Label: "Tema", Type: FieldText, Required: true},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
			CategoryField{Name: "size", Label: "Tamanho", Type: FieldText, Required: false},
			CategoryField{Name: "quantity", Label: "Quantidade por Pacote", Type: FieldNumber, Required: false},
		),
	},
	{
		ID:   "industrial",
		Name: "Equipamentos Industriais e Científicos",
		Fields: withUniversal(
			CategoryField{Name: "usage", Label: "Uso", Type: FieldSelect, Required: true, Options: []string{"Industrial", "Comercial", "Laboratorial"}},
			CategoryField{Name: "specifications", Label: "Especificações Técnicas", Type: FieldTextarea, Required: true},
			CategoryField{Name: "certifications", Label: "Certificações", Type: FieldText, Required: false},
			CategoryField{Name: "capacity", Label: "Capacidade", Type: FieldText, Required: false},
		),
	},
	{
		ID:   "ppe",
		Name: "EPIs",
		Fields: withUniversal(
			CategoryField{Name: "protectionLevel", Label: "Nível de Proteção/Certificação (CA)", Type: FieldText, Required: true},
			CategoryField{Name: "material", Label: "Material", Type: FieldText, Required: true},
			CategoryField{Name: "size", Label: "Tamanho", Type: FieldText, Required: true},
			CategoryField{Name: "usage", Label: "Uso", Type: FieldSelect, Required: true, Options: []string{"Ocupacional", "Doméstico"}},
		),
	},
	{
		ID:   "services",
		Name: "Serviços",
		Fields: []CategoryField{
			{Name: "serviceType", Label: "Tipo de Serviço", Type: FieldText, Required: true},
			{Name: "duration", Label: "Duração", Type: FieldText, Required: true},
			{Name: "modality", Label: "Modalidade", Type: FieldSelect, Required: true, Options: []string{"Online", "Presencial", "Híbrido"}},
			{Name: "coverage", Label: "Área de Cobertura (CEP)", Type: FieldText, Required: false},
			{Name: "cancellationPolicy", Label: "Política de Cancelamento", Type: FieldTextarea, Required: true},
		},
	},
}

// CategoryByID localiza uma categoria na tabela estática.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
