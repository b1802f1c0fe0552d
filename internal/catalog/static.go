package catalog

// StaticProvider serves the built-in course content. All data is immutable
// after construction, so reads need no locking.
type StaticProvider struct {
	subjects []Subject
	details  map[string]SubjectDetail
	contents map[string]ModuleContent
	modules  map[string]struct{}
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider builds the provider with the standard course catalog.
func NewStaticProvider() *StaticProvider {
	p := &StaticProvider{
		subjects: []Subject{
			{ID: 1, Title: "Filosofía", Slug: "filosofia", Icon: "🧠", Description: "Explora el pensamiento humano"},
			{ID: 2, Title: "Historia", Slug: "historia", Icon: "🏰", Description: "Viaja a través del tiempo"},
			{ID: 3, Title: "Inglés", Slug: "ingles", Icon: "📚", Description: "Domina el idioma global"},
			{ID: 4, Title: "Ciencias Naturales", Slug: "ciencias-naturales", Icon: "🔬", Description: "Descubre la naturaleza"},
		},
		details: map[string]SubjectDetail{
			"filosofia": {
				SubjectName: "Filosofía",
				Modules: []Module{
					{ID: "filosofia-1", Name: "Módulo 1: Introducción al Pensamiento", Description: "Conceptos fundamentales de la filosofía antigua y moderna.", Duration: "20:00"},
					{ID: "filosofia-2", Name: "Módulo 2: Ética y Moral", Description: "Análisis de las teorías éticas y dilemas morales.", Duration: "35:00"},
					{ID: "filosofia-3", Name: "Módulo 3: Metafísica y Ontología", Description: "Exploración de la naturaleza de la realidad y la existencia.", Duration: "28:00"},
					{ID: "filosofia-4", Name: "Módulo 4: Lógica y Epistemología", Description: "Principios del razonamiento y el estudio del conocimiento.", Duration: "22:00"},
				},
			},
			"historia": {
				SubjectName: "Historia",
				Modules: []Module{
					{ID: "historia-1", Name: "Módulo 1: Civilizaciones Antiguas", Description: "Mesopotamia, Egipto, Grecia y Roma.", Duration: "40:00"},
					{ID: "historia-2", Name: "Módulo 2: Edad Media", Description: "Feudalismo, Cruzadas y el surgimiento de las naciones.", Duration: "30:00"},
					{ID: "historia-3", Name: "Módulo 3: Revoluciones y Guerras Mundiales", Description: "Desde la Ilustración hasta el siglo XX.", Duration: "50:00"},
				},
			},
			"ingles": {
				SubjectName: "Inglés",
				Modules: []Module{
					{ID: "ingles-1", Name: "Módulo 1: Vocabulario Básico", Description: "Palabras y frases esenciales para principiantes.", Duration: "15:00"},
					{ID: "ingles-2", Name: "Módulo 2: Gramática Fundamental", Description: "Estructuras básicas de oraciones y tiempos verbales.", Duration: "25:00"},
					{ID: "ingles-3", Name: "Módulo 3: Conversación Diaria", Description: "Práctica de diálogos y situaciones cotidianas.", Duration: "30:00"},
				},
			},
			"ciencias-naturales": {
				SubjectName: "Ciencias Naturales",
				Modules: []Module{
					{ID: "ciencias-naturales-1", Name: "Módulo 1: Ecología y Medio Ambiente", Description: "Estudio de los ecosistemas y la sostenibilidad.", Duration: "30:00"},
					{ID: "ciencias-naturales-2", Name: "Módulo 2: El Cuerpo Humano", Description: "Sistemas y funciones vitales.", Duration: "45:00"},
					{ID: "ciencias-naturales-3", Name: "Módulo 3: Química Orgánica", Description: "Fundamentos de los compuestos de carbono.", Duration: "35:00"},
				},
			},
		},
		contents: map[string]ModuleContent{
			"filosofia-1": {
				ID:       "filosofia-1",
				Name:     "Módulo 1: Introducción al Pensamiento",
				AudioURL: "/audio/SoundHelix-Song-1.mp3",
				Transcript: "Este es el primer párrafo de la transcripción. Aquí se explica la introducción al pensamiento filosófico. " +
					"La filosofía busca entender la realidad, el conocimiento y la existencia humana. \n\n" +
					"Continúa con el segundo párrafo. Los grandes pensadores como Sócrates, Platón y Aristóteles sentaron las bases " +
					"de la filosofía occidental. Sus ideas aún resuenan en el mundo moderno. \n\n" +
					"Finalmente, este es el tercer párrafo. Es importante reflexionar sobre estos conceptos para desarrollar un " +
					"pensamiento crítico y una comprensión más profunda del mundo que nos rodea. La filosofía no es solo una " +
					"disciplina académica, sino una forma de vida.",
			},
			"historia-1": {
				ID:         "historia-1",
				Name:       "Módulo 1: Civilizaciones Antiguas",
				AudioURL:   "/audio/SoundHelix-Song-2.mp3",
				Transcript: "La historia de las civilizaciones antiguas es fascinante. Comenzamos con Mesopotamia y el desarrollo de la escritura cuneiforme.",
			},
			"ingles-1": {
				ID:         "ingles-1",
				Name:       "Módulo 1: Vocabulario Básico",
				AudioURL:   "/audio/SoundHelix-Song-3.mp3",
				Transcript: "Aprende las palabras básicas en inglés. Hola, adiós, por favor, gracias.",
			},
			"ciencias-naturales-1": {
				ID:         "ciencias-naturales-1",
				Name:       "Módulo 1: Ecología y Medio Ambiente",
				AudioURL:   "/audio/SoundHelix-Song-4.mp3",
				Transcript: "La ecología es el estudio de los ecosistemas. Entender el medio ambiente es crucial para nuestro futuro.",
			},
		},
	}

	p.modules = make(map[string]struct{})
	for _, detail := range p.details {
		for _, m := range detail.Modules {
			p.modules[m.ID] = struct{}{}
		}
	}

	return p
}

func (p *StaticProvider) Subjects() []Subject {
	out := make([]Subject, len(p.subjects))
	copy(out, p.subjects)
	return out
}

func (p *StaticProvider) SubjectDetail(slug string) (SubjectDetail, error) {
	detail, ok := p.details[slug]
	if !ok {
		return SubjectDetail{}, ErrSubjectNotFound
	}

	// Copy the module slice so callers can set Completed without mutating
	// the shared catalog.
	modules := make([]Module, len(detail.Modules))
	copy(modules, detail.Modules)
	return SubjectDetail{SubjectName: detail.SubjectName, Modules: modules}, nil
}

func (p *StaticProvider) ModuleContent(moduleID string) (ModuleContent, error) {
	content, ok := p.contents[moduleID]
	if !ok {
		return ModuleContent{}, ErrModuleNotFound
	}
	return content, nil
}

func (p *StaticProvider) ModuleExists(moduleID string) bool {
	_, ok := p.modules[moduleID]
	return ok
}
