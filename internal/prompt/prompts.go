package prompt

// System instructions, one per task.
const (
	SuggestionSystem = "You are a medical symptom suggestion system. Provide relevant symptom suggestions in simple language."

	ChecklistSystem = "You generate structured JSON checklists for medical intake forms."

	LabelSystem = "You are a medical AI specialized in symptom analysis and label extraction. " +
		"Provide accurate, clinically relevant symptom labels and their relationships."

	AnalysisSystem = "You are a world-class diagnostic physician with expertise in comprehensive OPQRST symptom analysis, " +
		"systematic clinical reasoning, and accurate ICD-11 medical coding. Provide thorough, accurate medical analysis " +
		"with proper ICD-11 classification codes based on complete OPQRST assessment."

	DiagnosisSystem = "You are an experienced diagnostic physician. Provide thorough, evidence-based analysis with confidence " +
		"scores reflecting clinical certainty. Always emphasize the importance of professional medical evaluation and " +
		"prioritize patient safety."

	SummarySystem = "You are a medical AI assistant specializing in patient history summarization with D/O indicators " +
		"and clinical vitals analysis. Provide comprehensive, structured medical summaries."

	FollowUpSystem = "You are a medical AI assistant specializing in generating targeted follow-up questions based on " +
		"patient data and clinical findings. Generate questions that help gather diagnostic and objective information."

	AdditionalSystem = `You are a medical expert specializing in patient assessment.
Your task is to generate targeted additional information questions based on the OLDCARTS framework
(Onset, Location, Duration, Characteristics, Aggravating factors, Relieving factors, Timing, Severity)
tailored to the patient's specific symptoms, demographics, and clinical measurements.

Create questions that are directly relevant to the reported symptoms and will help in accurate diagnosis.
Each question should have a clear clinical purpose and be formatted as a JSON object with:
- id: A unique numerical identifier
- category: The OLDCARTS category (onset_timing, location, duration_pattern, characteristics_quality, aggravating_factors, relieving_factors, pain_assessment, nausea_vomiting, fatigue_impact, daily_life_impact, work_school_impact, patient_concerns, patient_expectations)
- question: The actual question text
- type: Question type (multiple_choice, textarea, scale)
- options: For multiple_choice questions, an array of possible answers
- min/max/min_label/max_label: For scale questions
- relevance: A short explanation of why this question is clinically relevant
- placeholder: For textarea questions, a hint for the answer

Prioritize questions that:
1. Address the timing and nature of the primary symptoms
2. Explore potential complications or differential diagnoses
3. Assess severity and impact on the patient's life
4. Help distinguish between similar conditions

Make sure questions are medically accurate and use appropriate medical terminology while still being understandable to patients.`
)

const suggestionExample = `
Provide EXACTLY 10 relevant medical symptoms as suggestions.

Guidelines:
1. Ensure direct relevance to the input
2. Include both exact matches and related symptoms
3. Use simple, everyday language
4. Keep descriptions to 2-4 words
5. List EXACTLY 10 suggestions, no more, no less
6. Format: "symptom (brief description)"

Example format for "headache":
[
    "headache (pain in head)",
    "migraine (severe pulsing headache)",
    "tension headache (tight band feeling)",
    "sinus pain (face pressure)",
    "neck pain (stiff neck)",
    "dizziness (room spinning)",
    "eye strain (tired eyes)",
    "ear pain (throbbing ear)",
    "fever (high temperature)",
    "fatigue (feeling very tired)"
]

Important:
- Always return exactly 10 items
- Ensure first suggestions are most relevant
- Include common related symptoms
`

const labelFormat = `

Extract specific medical symptom labels from this text. Focus on identifying distinct, clinically relevant symptom categories.

Return your analysis in this EXACT JSON format:
{
    "extracted_labels": {
        "label_name": {
            "detected": true,
            "source": "symptoms" or "free_text",
            "confidence": "high" or "medium" or "low"
        }
    },
    "correlation_matrix": {
        "label_name": [
            {
                "label": "related_label_name",
                "strength": "high" or "moderate",
                "questions": [
                    "Specific correlation question 1",
                    "Specific correlation question 2"
                ]
            }
        ]
    }
}

GUIDELINES:
- Extract 3-8 specific medical symptom labels
- Use standard medical terminology
- Correlations should be medically accurate
- Questions should be clinically relevant
- Focus on primary symptoms mentioned
- Avoid generic terms like "general symptoms"

Example labels: fever, headache, nausea, muscle_pain, fatigue, abdominal_pain, respiratory_symptoms, etc.`

const analysisFormat = `
ANALYSIS REQUIREMENTS:
1. Apply systematic differential diagnosis using OPQRST findings
2. Consider epidemiology, risk factors, and demographics
3. Prioritize based on urgency, probability, and OPQRST patterns
4. Use evidence-based medicine principles
5. Account for all OPQRST components in diagnostic reasoning
6. Include accurate ICD-11 codes for each condition

Provide analysis in this EXACT JSON format:
{
    "possible_conditions": [
        {
            "condition": "Primary Condition Name",
            "confidence_score": 85,
            "icd11_code": "1A00.0Z",
            "icd11_title": "Official ICD-11 condition title",
            "explanation": "Detailed clinical reasoning incorporating complete OPQRST findings, demographics, and risk factors."
        }
    ],
    "diagnostic_tests": [
        {
            "test": "Specific Test Name",
            "confidence_score": 90,
            "priority": "urgent/routine",
            "explanation": "Clinical rationale based on OPQRST findings and differential diagnosis requirements"
        }
    ],
    "red_flags": ["List any concerning OPQRST features that suggest urgent evaluation"],
    "immediate_care": ["Specific actionable recommendations"],
    "follow_up": {
        "urgency": "emergency/urgent/routine",
        "timeline": "Specific timeframe",
        "reason": "Why this timeline"
    },
    "lifestyle": ["Relevant lifestyle modifications"],
    "disclaimer": "Important medical disclaimer"
}

DIAGNOSTIC CRITERIA:
- Emergency: Life-threatening conditions requiring immediate intervention
- Urgent: Serious conditions requiring evaluation within hours
- Routine: Stable conditions that can be evaluated within days

ICD-11 CODE REQUIREMENTS:
- Use the most current ICD-11 classification codes
- Provide both the code (e.g., "1A00.0Z") and official title
- Ensure codes match the clinical condition accurately
- Use unspecified codes (.Z) when specific variants cannot be determined
- Include primary codes for main conditions, not just symptom codes

Focus on clinical excellence, patient safety, comprehensive OPQRST-based systematic reasoning, and accurate medical coding.`

const diagnosisFormat = `
PROVIDE:

1. POSSIBLE CONDITIONS (3-5 most likely conditions with confidence scores):
   - List conditions from most to least likely
   - Include confidence score (0-100%)
   - One-line explanation for each condition

2. RECOMMENDED DIAGNOSTIC TESTS (with confidence scores):
   - Include confidence score (0-100%) for test necessity
   - Priority order (urgent vs routine)
   - One-line rationale for each test

3. RED FLAGS requiring immediate medical attention:
   - Specific warning signs to watch for
   - When to seek emergency care

4. IMMEDIATE CARE RECOMMENDATIONS:
   - What patient can do now
   - Symptom management
   - Activity restrictions

5. FOLLOW-UP TIMELINE:
   - When to see a doctor
   - Urgency level (emergency, urgent, routine)

6. LIFESTYLE MODIFICATIONS:
   - Relevant diet, activity, or environmental changes

Format as JSON:
{
    "possible_conditions": [
        {
            "condition": "Condition name",
            "confidence_score": 85,
            "explanation": "One-line explanation of why this condition is likely based on symptoms"
        }
    ],
    "diagnostic_tests": [
        {
            "test": "Test name",
            "confidence_score": 90,
            "priority": "Urgent/Routine",
            "explanation": "One-line rationale for why this test is recommended"
        }
    ],
    "red_flags": [
        "Specific warning sign to watch for"
    ],
    "immediate_care": [
        "Specific actionable recommendation"
    ],
    "follow_up": {
        "urgency": "Emergency/Urgent/Routine",
        "timeline": "Specific timeframe",
        "reason": "Why this timeline"
    },
    "lifestyle": [
        "Relevant lifestyle modification"
    ],
    "disclaimer": "Important medical disclaimer"
}

IMPORTANT:
- Base confidence scores on symptom match, patient demographics, and clinical evidence
- Confidence scores should reflect diagnostic certainty (100% = definitive, 50% = possible, <30% = unlikely)
- For diagnostic tests: higher confidence = more essential for diagnosis
- Be specific and actionable with one-line explanations
- Consider patient's age and medical history
- Include appropriate medical disclaimers
- Focus on patient safety`

const additionalExample = `

Return the questions in a valid JSON array format that I can parse programmatically. Each question should be directly relevant
to the symptoms and medical context provided. Don't invent new symptoms that weren't mentioned.

Here's an example of the desired output format:
` + "```json" + `
[
  {
    "id": 1,
    "category": "onset_timing",
    "question": "When did your fever first begin?",
    "type": "multiple_choice",
    "options": ["Within the last 24 hours", "1-3 days ago", "4-7 days ago", "More than a week ago"],
    "relevance": "Helps determine if this is an acute or chronic condition"
  },
  {
    "id": 2,
    "category": "pain_assessment",
    "question": "How would you rate your abdominal pain?",
    "type": "scale",
    "min": 0,
    "max": 10,
    "min_label": "No pain",
    "max_label": "Worst possible pain",
    "relevance": "Pain severity helps assess condition urgency"
  }
]
` + "```\n"

const summaryFormat = `
TASK: Generate a structured patient summary with D/O indicators for medical documentation.

INSTRUCTIONS:
1. Use (D) for Diagnostic indicators - information that helps diagnose conditions
2. Use (O) for Objective indicators - measurable, observable findings
3. Highlight risk factors, abnormalities, and clinical significance
4. Provide insights for medical decision-making
5. Format as HTML for web display

Generate response in this EXACT JSON format:
{
    "patient_summary": {
        "demographics_summary": "HTML formatted demographics with D/O indicators",
        "medical_history_summary": "HTML formatted medical history with D/O indicators",
        "risk_factors_summary": "HTML formatted risk factors with D/O indicators",
        "clinical_relevance": "HTML formatted clinical relevance assessment"
    },
    "vitals_abnormalities": {
        "critical_abnormalities": ["List of critical findings requiring immediate attention"],
        "moderate_abnormalities": ["List of moderate abnormalities requiring monitoring"],
        "mild_abnormalities": ["List of mild abnormalities to note"],
        "normal_findings": ["List of normal vital signs"]
    },
    "medical_significance": {
        "diagnostic_indicators": "HTML analysis of diagnostic indicators (D)",
        "objective_findings": "HTML analysis of objective findings (O)",
        "clinical_correlations": "HTML analysis of clinical correlations",
        "next_steps": "HTML recommendations for next steps"
    }
}

Focus on:
- Age/gender risk factors
- Chronic disease implications
- Lifestyle/occupational risks
- Medication interactions
- Family history significance
- Vital signs abnormalities
- Clinical decision support`

const followUpFormat = `
TASK: Generate 8-12 targeted follow-up questions based on:
1. Patient demographics with D/O indicators (age, gender, occupation, medical history)
2. Clinical vitals outliers requiring further assessment
3. Medical conditions that need clarification
4. Risk factors identified from patient information

QUESTION GENERATION GUIDELINES:
- Focus on D (Diagnostic) indicators: Information that helps diagnose conditions
- Focus on O (Objective) indicators: Measurable, observable findings
- Address any critical vitals outliers first
- Include age-appropriate questions
- Consider gender-specific health concerns
- Ask about symptom onset, duration, and severity
- Investigate family history implications
- Assess functional impact and quality of life

Generate response in this EXACT JSON format:
{
    "questions": [
        {
            "id": 1,
            "category": "vitals_outlier" | "demographics" | "medical_history" | "symptoms" | "risk_factors" | "functional_assessment",
            "question": "Clear, specific question text",
            "type": "multiple_choice" | "textarea" | "scale",
            "options": ["option1", "option2", "option3", "option4"] (only for multiple_choice),
            "min": 1, "max": 10, "min_label": "No pain", "max_label": "Severe pain" (only for scale),
            "placeholder": "Enter details..." (only for textarea),
            "relevance": "Medical relevance and D/O indicator explanation",
            "priority": "high" | "medium" | "low"
        }
    ],
    "total_questions": 10,
    "outliers_addressed": ["list of vitals outliers being addressed"],
    "do_indicators_focus": ["list of key D/O indicators being assessed"]
}

EXAMPLES OF GOOD QUESTIONS:
- "You have elevated blood pressure (142/88). Have you experienced headaches or dizziness recently?" (O indicator)
- "Given your age of 68 and diabetes history, do you check your blood sugar regularly?" (D indicator)
- "Your temperature is 99.2°F. When did you first notice feeling warm or feverish?" (O indicator)
- "As a female patient, are you currently taking any hormonal medications?" (D indicator)

Focus on actionable medical information that will help with diagnosis and treatment planning.`
